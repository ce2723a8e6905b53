// Package bridge orchestrates the hub read path.
//
// The bridge polls the Home Center REST API on a fixed interval, pushes
// each device's property bag through the converter registry, and fans
// every accepted characteristic update out to three sinks:
//
//   - MQTT: retained state topics (hcbridge/state/{device}/{characteristic})
//   - SQLite: the characteristic history table
//   - InfluxDB: characteristic and refresh-cycle telemetry
//
// All sinks are optional; the bridge degrades to a plain poll-and-update
// loop when none are configured.
//
// # Change Detection
//
// Converters write into characteristic cells unconditionally; the bridge
// caches the last value per device/characteristic pair and only fans out
// transitions. Retained MQTT topics therefore reflect current state
// without republishing on every cycle.
//
// # Shutdown
//
// Stop() cancels in-flight fetches, stops the poll loop, and waits for
// the cycle goroutine to exit. Safe to call multiple times.
package bridge
