// Package hub implements the HTTP client for the Home Center hub's REST API.
//
// The hub exposes devices, climate zones, and heating zones as JSON
// resources. This package fetches them and presents device properties
// through a typed accessor (Properties) so converters never probe raw maps.
//
// # Key Responsibilities
//
//   - Authenticate against the hub with basic auth
//   - Fetch device lists and individual devices for refresh cycles
//   - Fetch climate/heating zone state for the temperature converters
//   - Normalise the hub's loosely-typed property values (numbers reported
//     as strings, absent fields) behind present/absent semantics
//
// # Error Handling
//
// All methods return wrapped sentinel errors (ErrRequestFailed, ErrNotFound,
// ErrBadStatus, ErrDecodeFailed) checkable with errors.Is. Callers in the
// conversion layer catch and log; nothing from this package reaches the
// accessory framework.
//
// # Thread Safety
//
// Client is safe for concurrent use from multiple goroutines.
package hub
