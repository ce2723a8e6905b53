package database

import (
	"context"
	"fmt"
)

// schema contains the DDL statements applied at startup.
//
// Statements are idempotent (CREATE ... IF NOT EXISTS) so Bootstrap can run
// on every start without tracking versions. The schema is small enough that
// a full migration framework would be overkill.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS characteristic_history (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		device_id      INTEGER NOT NULL,
		characteristic TEXT    NOT NULL,
		value          TEXT    NOT NULL,
		recorded_at    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_characteristic_history_device
		ON characteristic_history(device_id, characteristic, recorded_at)`,
	`CREATE INDEX IF NOT EXISTS idx_characteristic_history_recorded
		ON characteristic_history(recorded_at)`,
}

// Bootstrap creates the database schema if it doesn't exist.
//
// Safe to call on every startup. Each statement runs in a single transaction
// so a failure leaves the database unchanged.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: If any DDL statement fails (the transaction is rolled back)
func (db *DB) Bootstrap(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting bootstrap transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op if committed

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bootstrap transaction: %w", err)
	}
	return nil
}
