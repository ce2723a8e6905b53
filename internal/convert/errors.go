package convert

import "errors"

// Domain errors for the conversion layer. These never cross the Dispatch
// boundary; the registry logs them and leaves the characteristic unchanged.
var (
	// ErrFetchFailed is returned when a secondary zone fetch fails.
	ErrFetchFailed = errors.New("convert: zone fetch failed")

	// ErrMissingField is returned when a fetched zone lacks an expected field.
	ErrMissingField = errors.New("convert: expected field missing")

	// ErrNotNumeric is returned when a strictly-numeric property is absent
	// or unparseable, for converters whose skip is logged.
	ErrNotNumeric = errors.New("convert: property not numeric")

	// ErrUnknownEnum is returned for enumeration inputs with no mapping
	// (unknown mode string, unknown security status, unknown door state).
	ErrUnknownEnum = errors.New("convert: unmapped enumeration value")

	// ErrBadColor is returned when an RGBW colour string cannot be parsed.
	ErrBadColor = errors.New("convert: invalid colour string")

	// ErrNoDevice is returned when a zone converter is invoked without a
	// device id to fetch.
	ErrNoDevice = errors.New("convert: no device id for zone fetch")

	// ErrDuplicateKind is returned by NewRegistry if the static converter
	// table maps a kind twice.
	ErrDuplicateKind = errors.New("convert: duplicate converter registration")
)
