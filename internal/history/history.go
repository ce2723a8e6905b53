package history

import (
	"context"
	"time"
)

// Entry represents a single recorded characteristic value.
//
// Each entry stores the translated value as published to the accessory
// layer, providing a local audit trail even when the time-series database
// is unavailable.
type Entry struct {
	// ID is the auto-incremented primary key for the history row.
	ID int64 `json:"id"`

	// DeviceID is the hub device identifier.
	DeviceID int `json:"device_id"`

	// Characteristic is the characteristic name (e.g. "CurrentTemperature").
	Characteristic string `json:"characteristic"`

	// Value is the string form of the translated value.
	Value string `json:"value"`

	// RecordedAt is the timestamp of the update (UTC).
	RecordedAt time.Time `json:"recorded_at"`
}

// Repository stores and retrieves characteristic value history.
//
// Implementations must be thread-safe and use UTC timestamps.
type Repository interface {
	// Record persists a characteristic update.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - deviceID: Hub device identifier
	//   - characteristic: Characteristic name
	//   - value: String form of the translated value
	//
	// Returns:
	//   - error: nil on success, otherwise the underlying persistence error
	Record(ctx context.Context, deviceID int, characteristic, value string) error

	// Recent returns recent history entries for a device characteristic.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - deviceID: Hub device identifier
	//   - characteristic: Characteristic name
	//   - limit: Maximum entries to return (implementation may clamp bounds)
	//
	// Returns:
	//   - []Entry: Ordered newest-first history entries (may be empty)
	//   - error: nil on success, otherwise the underlying query error
	Recent(ctx context.Context, deviceID int, characteristic string, limit int) ([]Entry, error)

	// Prune deletes entries older than the given duration.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - olderThan: Duration to retain
	//
	// Returns:
	//   - int64: Number of rows deleted
	//   - error: nil on success, otherwise the underlying database error
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
