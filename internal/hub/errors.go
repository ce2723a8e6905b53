package hub

import "errors"

// Domain errors for the hub client. Use errors.Is() to check for these in
// calling code.
var (
	// ErrRequestFailed is returned when the HTTP request itself fails
	// (connection refused, timeout, cancelled context).
	ErrRequestFailed = errors.New("hub: request failed")

	// ErrNotFound is returned when the hub reports 404 for a resource.
	ErrNotFound = errors.New("hub: resource not found")

	// ErrBadStatus is returned for any other non-2xx response.
	ErrBadStatus = errors.New("hub: unexpected response status")

	// ErrDecodeFailed is returned when a response body cannot be decoded.
	ErrDecodeFailed = errors.New("hub: decoding response failed")
)
