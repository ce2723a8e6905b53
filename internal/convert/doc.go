// Package convert implements the read-path value translation layer of the
// bridge: it turns hub device properties into normalized characteristic
// values.
//
// # Architecture
//
// The bridge resolves each characteristic's framework identity to a
// hap.Kind once at startup (hap.Table), then dispatches refreshes through a
// static registry:
//
//	┌──────────────┐  Dispatch(kind)  ┌──────────────┐  UpdateValue  ┌────────────────┐
//	│    Bridge    │─────────────────►│   Registry   │──────────────►│ Characteristic │
//	│  (refresh)   │                  │  (this pkg)  │               │    handle      │
//	└──────────────┘                  └──────────────┘               └────────────────┘
//	                                        │ climate/heating zones only
//	                                        ▼
//	                                  ┌──────────────┐
//	                                  │  Hub client  │
//	                                  └──────────────┘
//
// # Converter Contract
//
// Every converter satisfies one uniform signature, Func. Synchronous
// converters ignore the context; the four climate converters use it for the
// secondary zone fetch. A converter either deposits a value into the
// characteristic handle or skips:
//
//   - return nil without updating: silent skip (unparseable numeric input,
//     absent property)
//   - return an error: the registry logs it and skips; nothing propagates
//     to the caller
//
// Converters are idempotent: the same property snapshot always produces the
// same characteristic value.
//
// # Normalisation Rules
//
// Percentage values are clamped to [0,100] and near-boundary readings are
// snapped (the hub reports 99 for "fully on/open" and 1 for "fully
// off/closed" on some device classes). Heterogeneous truthy values are
// coerced through Coerce. RGBW colour strings are converted to HSV with the
// white channel able to raise brightness. See the individual files.
package convert
