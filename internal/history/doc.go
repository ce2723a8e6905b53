// Package history persists translated characteristic values to SQLite.
//
// Every update applied to an accessory characteristic is recorded here,
// giving a local audit trail that survives restarts and works without the
// time-series database. Entries are pruned on a retention window to keep
// the database small.
package history
