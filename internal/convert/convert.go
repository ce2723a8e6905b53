package convert

import (
	"context"

	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/hub"
)

// Request carries one refresh invocation: the characteristic handle to
// update, the service descriptor that selects converter branches, the
// device ids backing the service, and the already-fetched property bag.
type Request struct {
	Characteristic hap.Characteristic
	Service        hap.Service
	DeviceIDs      []int
	Properties     hub.Properties
}

// Func is the uniform converter contract. Synchronous converters ignore
// ctx; the climate converters use it for their secondary zone fetch.
//
// A nil return with no UpdateValue call is a silent skip. A non-nil error
// is logged by the registry and the update is skipped; errors never reach
// the bridge.
type Func func(ctx context.Context, req Request) error

// ZoneFetcher is the secondary fetch dependency of the climate converters.
// Satisfied by *hub.Client; faked in tests.
type ZoneFetcher interface {
	GetClimateZone(ctx context.Context, id int) (*hub.ClimateZone, error)
	GetHeatingZone(ctx context.Context, id int) (*hub.HeatingZone, error)
}

// Logger is the narrow logging interface the registry needs.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Warn(msg string, args ...any)
}

// Set holds the converter implementations and their dependencies. All
// converters except the four climate ones are pure over the Request.
type Set struct {
	zones ZoneFetcher
}

// NewSet creates the converter set.
//
// Parameters:
//   - zones: Secondary fetch client for climate/heating zones. May be nil
//     if no service is flagged as a zone; the climate converters then fail
//     the fetch branch with ErrFetchFailed.
func NewSet(zones ZoneFetcher) *Set {
	return &Set{zones: zones}
}

// zoneID returns the device id a zone converter should fetch.
func (req Request) zoneID() (int, error) {
	if len(req.DeviceIDs) == 0 {
		return 0, ErrNoDevice
	}
	return req.DeviceIDs[0], nil
}
