package convert

import (
	"context"
	"fmt"

	"github.com/danharmsworth/hcbridge/internal/hap"
)

// Strictly-numeric converters. Unparseable input means "skip the update";
// only the skips the hub makes actionable (outlet power, battery level)
// are logged, the rest are silent.

// floatValue writes the numeric value property unchanged
// (CurrentRelativeHumidity, CurrentAmbientLightLevel).
func (s *Set) floatValue(_ context.Context, req Request) error {
	v, ok := req.Properties.Value()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(v)
	return nil
}

// outletInUse reports in-use iff the measured power draw exceeds the
// threshold. The boundary is exclusive: exactly 1.0 W is not in use.
func (s *Set) outletInUse(_ context.Context, req Request) error {
	power, ok := req.Properties.Power()
	if !ok {
		return fmt.Errorf("%w: power", ErrNotNumeric)
	}
	req.Characteristic.UpdateValue(power > outletPowerThresholdWatts)
	return nil
}

// coLevel writes the CO concentration reading directly, no clamping.
func (s *Set) coLevel(_ context.Context, req Request) error {
	v, ok := req.Properties.Concentration()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(v)
	return nil
}

// coPeakLevel writes the peak CO concentration reading.
func (s *Set) coPeakLevel(_ context.Context, req Request) error {
	v, ok := req.Properties.MaxConcentration()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(v)
	return nil
}

// batteryLevel writes the battery percentage. Readings above 100 are the
// hub's "unknown/invalid" sentinel and are reported as 0, deliberately not
// clamped to 100.
func (s *Set) batteryLevel(_ context.Context, req Request) error {
	v, ok := req.Properties.BatteryLevel()
	if !ok {
		return fmt.Errorf("%w: batteryLevel", ErrNotNumeric)
	}
	if v > batteryUnknownSentinel {
		v = 0
	}
	req.Characteristic.UpdateValue(v)
	return nil
}

// statusLowBattery raises the low-battery status at or below the threshold.
// The out-of-range sentinel (>100) also counts as low: an unknown battery
// is treated as one needing attention.
func (s *Set) statusLowBattery(_ context.Context, req Request) error {
	v, ok := req.Properties.BatteryLevel()
	if !ok {
		return nil
	}
	if v <= lowBatteryThreshold || v > batteryUnknownSentinel {
		req.Characteristic.UpdateValue(hap.BatteryLow)
	} else {
		req.Characteristic.UpdateValue(hap.BatteryNormal)
	}
	return nil
}

// chargingState is a fixed-value converter: the hub exposes no charging
// signal, so NOT_CHARGING is always reported.
func (s *Set) chargingState(_ context.Context, req Request) error {
	req.Characteristic.UpdateValue(hap.NotCharging)
	return nil
}
