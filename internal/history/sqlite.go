package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// SQLiteRepository implements Repository using SQLite.
//
// It stores translated values as text in the characteristic_history table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite history repository.
//
// Parameters:
//   - db: Open SQLite connection used for queries
//
// Returns:
//   - *SQLiteRepository: Repository instance ready for use
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Record inserts a new history entry for a device characteristic.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - deviceID: Hub device identifier
//   - characteristic: Characteristic name
//   - value: String form of the translated value
//
// Returns:
//   - error: nil on success, otherwise the underlying database error
func (r *SQLiteRepository) Record(ctx context.Context, deviceID int, characteristic, value string) error {
	if deviceID <= 0 {
		return fmt.Errorf("device id is required")
	}
	if characteristic == "" {
		return fmt.Errorf("characteristic is required")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO characteristic_history (device_id, characteristic, value, recorded_at) VALUES (?, ?, ?, ?)",
		deviceID,
		characteristic,
		value,
		time.Now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}

	return nil
}

// Recent returns recent history entries for a device characteristic,
// ordered newest first.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - deviceID: Hub device identifier
//   - characteristic: Characteristic name
//   - limit: Maximum entries to return (default 50, max 200)
//
// Returns:
//   - []Entry: History entries ordered by recorded_at DESC
//   - error: nil on success, otherwise the underlying query error
func (r *SQLiteRepository) Recent(ctx context.Context, deviceID int, characteristic string, limit int) ([]Entry, error) {
	if deviceID <= 0 {
		return nil, fmt.Errorf("device id is required")
	}
	if characteristic == "" {
		return nil, fmt.Errorf("characteristic is required")
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, device_id, characteristic, value, recorded_at
		 FROM characteristic_history
		 WHERE device_id = ? AND characteristic = ?
		 ORDER BY recorded_at DESC, id DESC
		 LIMIT ?`,
		deviceID,
		characteristic,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var entry Entry
		var recordedAt int64

		if err := rows.Scan(&entry.ID, &entry.DeviceID, &entry.Characteristic, &entry.Value, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entry.RecordedAt = time.Unix(recordedAt, 0).UTC()

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Prune deletes history entries older than the given duration.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - olderThan: Duration to retain (entries older than now-olderThan are deleted)
//
// Returns:
//   - int64: Number of rows deleted
//   - error: nil on success, otherwise the underlying database error
func (r *SQLiteRepository) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("olderThan must be positive")
	}

	cutoff := time.Now().UTC().Add(-olderThan).Unix()
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM characteristic_history WHERE recorded_at < ?",
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting history entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}

	return rowsAffected, nil
}
