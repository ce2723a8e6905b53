package hap

import "sync"

// Props exposes the bounded numeric range a characteristic declares.
// Kinds without a meaningful range report both bounds as zero.
type Props struct {
	MinValue float64
	MaxValue float64
}

// Characteristic is the contract the read path needs from a characteristic
// handle. The accessory framework owns the real object; converters only
// deposit values into it.
//
// UpdateValue must accept the value types the converters write: bool for
// boolean characteristics, int for enumerations, float64 for measurements.
type Characteristic interface {
	// Kind returns the characteristic kind.
	Kind() Kind

	// Props returns the declared numeric bounds.
	Props() Props

	// UpdateValue sets the current value. No return contract is relied
	// upon; failures are the framework's concern.
	UpdateValue(v any)
}

// Service describes the device or zone backing a characteristic. The
// capability flags select among converter branches.
type Service struct {
	// IsClimateZone marks services backed by a hub climate zone, whose
	// temperature and mode live behind a secondary fetch.
	IsClimateZone bool

	// IsHeatingZone marks services backed by a hub heating zone. Heating
	// zones have no mode concept; their state is always reported as HEAT.
	IsHeatingZone bool

	// IsGlobalVariableDimmer marks virtual dimmers backed by a hub
	// scripting variable. These report exact levels and are exempt from
	// the 99→100 snap.
	IsGlobalVariableDimmer bool

	// IsLockSwitch marks switch devices acting as locks, which report the
	// lock sense inverted.
	IsLockSwitch bool
}

// UpdateFunc observes a value accepted by a Cell.
type UpdateFunc func(kind Kind, value any)

// Cell is a minimal in-process Characteristic implementation used by the
// bridge wiring and by tests. The accessory framework's own handles replace
// it in embedded deployments.
type Cell struct {
	kind  Kind
	props Props

	mu       sync.RWMutex
	value    any
	onUpdate UpdateFunc
}

// NewCell creates a characteristic cell.
//
// Parameters:
//   - kind: The characteristic kind
//   - props: Declared numeric bounds (zero value for unbounded kinds)
//   - onUpdate: Optional observer invoked after each accepted update
func NewCell(kind Kind, props Props, onUpdate UpdateFunc) *Cell {
	return &Cell{kind: kind, props: props, onUpdate: onUpdate}
}

// Kind implements Characteristic.
func (c *Cell) Kind() Kind { return c.kind }

// Props implements Characteristic.
func (c *Cell) Props() Props { return c.props }

// UpdateValue implements Characteristic. The observer runs outside the lock.
func (c *Cell) UpdateValue(v any) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	if c.onUpdate != nil {
		c.onUpdate(c.kind, v)
	}
}

// Value returns the most recently accepted value, or nil if none.
func (c *Cell) Value() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// DefaultProps returns the conventional bounds for a kind.
//
// Percentage kinds are [0,100], tilt angles [-90,90]; everything else has no
// meaningful numeric range and gets the zero Props.
func DefaultProps(kind Kind) Props {
	switch kind {
	case KindBrightness, KindCurrentPosition, KindTargetPosition,
		KindBatteryLevel, KindSaturation, KindCurrentRelativeHumidity:
		return Props{MinValue: 0, MaxValue: 100}
	case KindCurrentHorizontalTilt, KindTargetHorizontalTilt:
		return Props{MinValue: -90, MaxValue: 90}
	case KindHue:
		return Props{MinValue: 0, MaxValue: 360}
	default:
		return Props{}
	}
}
