package history

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// setupHistoryTestDB creates an in-memory SQLite database with the
// characteristic_history table.
func setupHistoryTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE characteristic_history (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			device_id      INTEGER NOT NULL,
			characteristic TEXT    NOT NULL,
			value          TEXT    NOT NULL,
			recorded_at    INTEGER NOT NULL
		);
		CREATE INDEX idx_characteristic_history_device
			ON characteristic_history(device_id, characteristic, recorded_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// insertHistoryRow inserts a history row with a specific timestamp.
func insertHistoryRow(t *testing.T, db *sql.DB, deviceID int, characteristic, value string, recordedAt time.Time) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO characteristic_history (device_id, characteristic, value, recorded_at) VALUES (?, ?, ?, ?)",
		deviceID,
		characteristic,
		value,
		recordedAt.UTC().Unix(),
	)
	if err != nil {
		t.Fatalf("failed to insert history row: %v", err)
	}
}

// TestRecord verifies history writes and retrieval.
func TestRecord(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	if err := repo.Record(ctx, 42, "CurrentTemperature", "21.5"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := repo.Recent(ctx, 42, "CurrentTemperature", 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}

	entry := entries[0]
	if entry.DeviceID != 42 {
		t.Errorf("DeviceID = %d, want 42", entry.DeviceID)
	}
	if entry.Characteristic != "CurrentTemperature" {
		t.Errorf("Characteristic = %q, want CurrentTemperature", entry.Characteristic)
	}
	if entry.Value != "21.5" {
		t.Errorf("Value = %q, want 21.5", entry.Value)
	}
	if entry.RecordedAt.IsZero() {
		t.Error("RecordedAt is zero")
	}
}

// TestRecordValidation verifies input validation on Record.
func TestRecordValidation(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	if err := repo.Record(ctx, 0, "On", "true"); err == nil {
		t.Error("Record() with zero device id should error")
	}
	if err := repo.Record(ctx, 1, "", "true"); err == nil {
		t.Error("Record() with empty characteristic should error")
	}
}

// TestRecentOrdering verifies newest-first ordering.
func TestRecentOrdering(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	insertHistoryRow(t, db, 7, "Brightness", "25", base)
	insertHistoryRow(t, db, 7, "Brightness", "50", base.Add(time.Minute))
	insertHistoryRow(t, db, 7, "Brightness", "75", base.Add(2*time.Minute))

	entries, err := repo.Recent(ctx, 7, "Brightness", 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries length = %d, want 3", len(entries))
	}

	want := []string{"75", "50", "25"}
	for i, w := range want {
		if entries[i].Value != w {
			t.Errorf("entries[%d].Value = %q, want %q", i, entries[i].Value, w)
		}
	}
}

// TestRecentFiltersByCharacteristic verifies entries for other
// characteristics are excluded.
func TestRecentFiltersByCharacteristic(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now()
	insertHistoryRow(t, db, 7, "Brightness", "50", now)
	insertHistoryRow(t, db, 7, "On", "true", now)
	insertHistoryRow(t, db, 8, "Brightness", "10", now)

	entries, err := repo.Recent(ctx, 7, "Brightness", 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if entries[0].Value != "50" {
		t.Errorf("Value = %q, want 50", entries[0].Value)
	}
}

// TestRecentLimitClamping verifies default and max limits.
func TestRecentLimitClamping(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < defaultRecentLimit+10; i++ {
		insertHistoryRow(t, db, 3, "On", "true", base.Add(time.Duration(i)*time.Second))
	}

	// Zero limit uses default
	entries, err := repo.Recent(ctx, 3, "On", 0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != defaultRecentLimit {
		t.Errorf("entries length = %d, want %d (default)", len(entries), defaultRecentLimit)
	}

	// Oversized limit clamps to max (fewer rows than max exist)
	entries, err = repo.Recent(ctx, 3, "On", maxRecentLimit+500)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != defaultRecentLimit+10 {
		t.Errorf("entries length = %d, want %d", len(entries), defaultRecentLimit+10)
	}
}

// TestPrune verifies old entries are deleted.
func TestPrune(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Hour)
	insertHistoryRow(t, db, 1, "On", "true", old)
	insertHistoryRow(t, db, 1, "On", "false", recent)

	deleted, err := repo.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() deleted = %d, want 1", deleted)
	}

	entries, err := repo.Recent(ctx, 1, "On", 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if entries[0].Value != "false" {
		t.Errorf("surviving entry Value = %q, want false", entries[0].Value)
	}
}

// TestPruneValidation verifies Prune rejects non-positive durations.
func TestPruneValidation(t *testing.T) {
	db := setupHistoryTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	if _, err := repo.Prune(ctx, 0); err == nil {
		t.Error("Prune() with zero duration should error")
	}
	if _, err := repo.Prune(ctx, -time.Hour); err == nil {
		t.Error("Prune() with negative duration should error")
	}
}
