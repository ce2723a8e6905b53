package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteCharacteristic writes one accepted characteristic value to InfluxDB.
//
// This is the primary method for recording accessory telemetry. The write is
// non-blocking; data is batched and sent asynchronously.
//
// Boolean and enumeration characteristics should be converted to their
// numeric representation before writing.
//
// Parameters:
//   - deviceID: Hub device id backing the characteristic
//   - characteristic: The characteristic kind name (e.g., "Brightness")
//   - value: The accepted numeric value
//
// Example:
//
//	client.WriteCharacteristic(42, "CurrentTemperature", 21.5)
//	client.WriteCharacteristic(17, "On", 1)
func (c *Client) WriteCharacteristic(deviceID int, characteristic string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"characteristic",
		map[string]string{
			"device_id":      strconv.Itoa(deviceID),
			"characteristic": characteristic,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteRefreshCycle writes one poll-cycle summary measurement.
//
// Used for tracking hub responsiveness and bridge refresh health.
//
// Parameters:
//   - devices: Number of devices refreshed in the cycle
//   - updates: Number of characteristic updates accepted
//   - duration: Wall-clock time the cycle took
func (c *Client) WriteRefreshCycle(devices, updates int, duration time.Duration) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"refresh_cycle",
		nil,
		map[string]interface{}{
			"devices":     devices,
			"updates":     updates,
			"duration_ms": duration.Milliseconds(),
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
//
// Example:
//
//	client.WritePoint("system_stats",
//	    map[string]string{"host": "bridge-01"},
//	    map[string]interface{}{"cpu_percent": 45.2, "memory_mb": 512})
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp.
//
// Use this when the timestamp is not "now" (e.g., delayed data).
//
// Parameters:
//   - measurement: The measurement name
//   - tags: Key-value pairs for indexing
//   - fields: Key-value pairs for the data
//   - timestamp: The exact time for this data point
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
