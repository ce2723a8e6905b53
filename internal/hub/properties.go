package hub

import (
	"math"
	"strconv"
	"strings"
)

// Properties is the loosely-typed property bag the hub reports per device.
// Shape varies by device class; converters read it only through the typed
// accessors below, which report explicit present/absent semantics.
type Properties map[string]any

// Property names the converters read. The hub's schema is per-device-class;
// any of these may be absent for a given device.
const (
	propValue            = "value"
	propValue2           = "value2"
	propState            = "state"
	propColor            = "color"
	propPower            = "power"
	propBatteryLevel     = "batteryLevel"
	propConcentration    = "concentration"
	propMaxConcentration = "maxConcentration"
)

// Raw returns the untyped value of a property.
func (p Properties) Raw(key string) (any, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Float returns a property as float64.
//
// The hub reports numbers both as JSON numbers and as numeric strings; both
// are accepted. Absent, empty, non-numeric, NaN, and infinite values report
// false.
func (p Properties) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}

	switch x := v.(type) {
	case float64:
		if !finite(x) {
			return 0, false
		}
		return x, true
	case int:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String returns a property as a string. Non-string values report false.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Value returns the primary "value" property as a number.
func (p Properties) Value() (float64, bool) { return p.Float(propValue) }

// ValueRaw returns the primary "value" property untyped, for boolean
// coercion of heterogeneous representations.
func (p Properties) ValueRaw() (any, bool) { return p.Raw(propValue) }

// ValueString returns the primary "value" property as a string (security
// panels report status names here).
func (p Properties) ValueString() (string, bool) { return p.String(propValue) }

// Value2 returns the secondary value (slat tilt for venetian blinds).
func (p Properties) Value2() (float64, bool) { return p.Float(propValue2) }

// State returns the door/garage state name (Opened, Opening, Closing,
// Closed). "Unknown" is reported as absent: converters fall back to the
// numeric value in that case.
func (p Properties) State() (string, bool) {
	s, ok := p.String(propState)
	if !ok || s == "Unknown" {
		return "", false
	}
	return s, true
}

// Color returns the RGBW colour string ("R,G,B,W").
func (p Properties) Color() (string, bool) { return p.String(propColor) }

// Power returns the instantaneous power draw in watts.
func (p Properties) Power() (float64, bool) { return p.Float(propPower) }

// BatteryLevel returns the battery percentage as reported. Values above 100
// are the hub's "unknown" sentinel and are reinterpreted by the converters,
// not here.
func (p Properties) BatteryLevel() (float64, bool) { return p.Float(propBatteryLevel) }

// Concentration returns the CO concentration reading.
func (p Properties) Concentration() (float64, bool) { return p.Float(propConcentration) }

// MaxConcentration returns the peak CO concentration reading.
func (p Properties) MaxConcentration() (float64, bool) { return p.Float(propMaxConcentration) }
