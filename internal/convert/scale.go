package convert

import "github.com/danharmsworth/hcbridge/internal/hap"

// Normalisation constants. The hub reports near-boundary values for some
// device classes (99 for "fully on/open", 1 for "fully off/closed"); the
// snap rules compensate.
const (
	// percentMin and percentMax bound percentage-style values.
	percentMin = 0
	percentMax = 100

	// snapHighRaw is the raw value snapped up to percentMax.
	snapHighRaw = 99

	// snapLowRaw is the raw value snapped down to percentMin.
	snapLowRaw = 1

	// doorClosedRaw and doorOpenRaw are the positions a door's numeric
	// value reports at its travel limits, used when no state string is
	// available.
	doorClosedRaw = 0
	doorOpenRaw   = 99

	// outletPowerThresholdWatts is the power draw above which an outlet
	// counts as in use. The boundary itself is exclusive.
	outletPowerThresholdWatts = 1.0

	// lowBatteryThreshold is the battery percentage at or below which the
	// low-battery status is raised.
	lowBatteryThreshold = 20

	// batteryUnknownSentinel marks the hub's out-of-range battery
	// readings: values above it mean "unknown/invalid", not a real level.
	batteryUnknownSentinel = 100
)

// ClampPercent clamps v to [0,100].
func ClampPercent(v float64) float64 {
	if v < percentMin {
		return percentMin
	}
	if v > percentMax {
		return percentMax
	}
	return v
}

// SnapPosition normalizes a raw position value against the characteristic's
// declared bounds.
//
// In-bounds values are snapped at both near-boundaries (99→100, 1→0);
// out-of-bounds values fall back to the characteristic's minimum.
func SnapPosition(v float64, props hap.Props) float64 {
	if v < props.MinValue || v > props.MaxValue {
		return props.MinValue
	}
	switch v {
	case snapHighRaw:
		return percentMax
	case snapLowRaw:
		return percentMin
	default:
		return v
	}
}

// ScaleRange linearly rescales v from [fromMin,fromMax] into
// [toMin,toMax].
//
// Shared with the command path, which rescales in the opposite direction
// when pushing tilt values back to the hub.
func ScaleRange(v, fromMin, fromMax, toMin, toMax float64) float64 {
	if fromMax == fromMin {
		return toMin
	}
	return toMin + (v-fromMin)*(toMax-toMin)/(fromMax-fromMin)
}
