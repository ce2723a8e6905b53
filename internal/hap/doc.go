// Package hap defines the HomeKit-facing characteristic catalog used by the
// bridge's value translation layer.
//
// The accessory framework that owns the real characteristic objects is
// external to this repository. This package models only what the read path
// needs from it:
//
//   - Kind: a closed enumeration of the characteristic kinds the bridge
//     translates, decoupled from the framework's identity representation
//   - Table: a one-time resolution step from framework characteristic type
//     identifiers (Apple-defined UUIDs, short or full form) to Kinds
//   - Characteristic: the narrow contract a converter needs from a handle
//     (update the value, read the declared numeric bounds)
//   - The enumeration constants of the HomeKit specification that converters
//     write (lock, door, security-system, heating/cooling states, and so on)
//
// # Correctness
//
// The enumeration values here track the external HomeKit specification
// exactly. A wrong constant reports a wrong physical-world state, so changes
// must be checked against the published characteristic definitions rather
// than against what the hub happens to send.
//
// # Thread Safety
//
// Table is immutable after construction. Cell is safe for concurrent use.
package hap
