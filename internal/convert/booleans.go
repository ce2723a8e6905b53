package convert

import (
	"context"

	"github.com/danharmsworth/hcbridge/internal/hap"
)

// Boolean-backed converters. Each coerces the device's primary value
// through Coerce and maps the result onto the characteristic's two-valued
// enumeration. An absent value property is a silent skip.

// onOff writes the coerced value directly (On, MotionDetected).
func (s *Set) onOff(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(Coerce(raw))
	return nil
}

// contactSensor inverts the usual sense: the hub reports 0 for "door
// closed", which is "contact detected" in HomeKit terms.
func (s *Set) contactSensor(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	if Coerce(raw) {
		req.Characteristic.UpdateValue(hap.ContactNotDetected)
	} else {
		req.Characteristic.UpdateValue(hap.ContactDetected)
	}
	return nil
}

// detected maps the coerced value onto a 0/1 detected enumeration
// (LeakDetected, SmokeDetected, CarbonMonoxideDetected).
func (s *Set) detected(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(boolToInt(Coerce(raw)))
	return nil
}

// lockCurrentState reports SECURED for a truthy value. Lock-switch devices
// report the sense inverted: their "on" means unlocked.
func (s *Set) lockCurrentState(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	secured := Coerce(raw)
	if req.Service.IsLockSwitch {
		secured = !secured
	}
	req.Characteristic.UpdateValue(lockState(secured))
	return nil
}

// lockTargetState reports SECURED for a truthy value, no inversion.
func (s *Set) lockTargetState(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(lockState(Coerce(raw)))
	return nil
}

// active maps the coerced value onto ACTIVE/INACTIVE.
func (s *Set) active(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	if Coerce(raw) {
		req.Characteristic.UpdateValue(hap.ActiveOn)
	} else {
		req.Characteristic.UpdateValue(hap.Inactive)
	}
	return nil
}

// inUse maps the coerced value onto IN_USE/NOT_IN_USE.
func (s *Set) inUse(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	if Coerce(raw) {
		req.Characteristic.UpdateValue(hap.InUse)
	} else {
		req.Characteristic.UpdateValue(hap.NotInUse)
	}
	return nil
}

// switchEvent fires a single-press event for a truthy value. A falsy value
// produces no update at all: programmable switch events are one-shot, not
// state.
func (s *Set) switchEvent(_ context.Context, req Request) error {
	raw, ok := req.Properties.ValueRaw()
	if !ok {
		return nil
	}
	if Coerce(raw) {
		req.Characteristic.UpdateValue(hap.SinglePress)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func lockState(secured bool) int {
	if secured {
		return hap.LockSecured
	}
	return hap.LockUnsecured
}
