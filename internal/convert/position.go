package convert

import (
	"context"
	"math"

	"github.com/danharmsworth/hcbridge/internal/hap"
)

// position normalizes a shutter position against the characteristic's
// declared bounds (CurrentPosition, TargetPosition): both near-boundaries
// snap, out-of-bounds readings fall back to the minimum.
func (s *Set) position(_ context.Context, req Request) error {
	v, ok := req.Properties.Value()
	if !ok {
		return nil
	}
	req.Characteristic.UpdateValue(SnapPosition(v, req.Characteristic.Props()))
	return nil
}

// positionState is a fixed-value converter: the hub exposes no movement
// direction, so STOPPED is always reported.
func (s *Set) positionState(_ context.Context, req Request) error {
	req.Characteristic.UpdateValue(hap.PositionStopped)
	return nil
}

// tilt converts the secondary slat value (value2) for venetian blinds:
// snap in the raw [0,100] domain, then rescale into the characteristic's
// declared angle range (CurrentHorizontalTiltAngle,
// TargetHorizontalTiltAngle).
func (s *Set) tilt(_ context.Context, req Request) error {
	v, ok := req.Properties.Value2()
	if !ok {
		return nil
	}

	v = SnapPosition(v, hap.Props{MinValue: percentMin, MaxValue: percentMax})

	props := req.Characteristic.Props()
	angle := ScaleRange(v, percentMin, percentMax, props.MinValue, props.MaxValue)
	req.Characteristic.UpdateValue(math.Round(angle))
	return nil
}
