package convert

import (
	"context"
	"fmt"

	"github.com/danharmsworth/hcbridge/internal/hap"
)

// Registry maps characteristic kinds to converter functions. It is built
// once at construction from a static table and immutable afterwards.
type Registry struct {
	funcs map[hap.Kind]Func
	log   Logger
}

// NewRegistry builds the registry over the given converter set.
//
// Parameters:
//   - set: Converter implementations. Must not be nil.
//   - log: Sink for skipped-update warnings. Must not be nil.
//
// Returns:
//   - *Registry: Ready for Dispatch.
//   - error: ErrDuplicateKind if the static table is malformed. Only
//     reachable through a programming error, but checked rather than
//     silently last-wins.
func NewRegistry(set *Set, log Logger) (*Registry, error) {
	entries := []struct {
		kind hap.Kind
		fn   Func
	}{
		{hap.KindOn, set.onOff},
		{hap.KindBrightness, set.brightness},
		{hap.KindHue, set.hue},
		{hap.KindSaturation, set.saturation},
		{hap.KindMotionDetected, set.onOff},
		{hap.KindContactSensorState, set.contactSensor},
		{hap.KindLeakDetected, set.detected},
		{hap.KindSmokeDetected, set.detected},
		{hap.KindCarbonMonoxideDetected, set.detected},
		{hap.KindCarbonMonoxideLevel, set.coLevel},
		{hap.KindCarbonMonoxidePeakLevel, set.coPeakLevel},
		{hap.KindOutletInUse, set.outletInUse},
		{hap.KindLockCurrentState, set.lockCurrentState},
		{hap.KindLockTargetState, set.lockTargetState},
		{hap.KindActive, set.active},
		{hap.KindInUse, set.inUse},
		{hap.KindProgrammableSwitchEvent, set.switchEvent},
		{hap.KindCurrentPosition, set.position},
		{hap.KindTargetPosition, set.position},
		{hap.KindPositionState, set.positionState},
		{hap.KindCurrentHorizontalTilt, set.tilt},
		{hap.KindTargetHorizontalTilt, set.tilt},
		{hap.KindCurrentTemperature, set.temperature},
		{hap.KindTargetTemperature, set.targetTemperature},
		{hap.KindCurrentHeatingCooling, set.heatingCoolingState},
		{hap.KindTargetHeatingCooling, set.heatingCoolingState},
		{hap.KindTemperatureDisplayUnits, set.displayUnits},
		{hap.KindCurrentDoorState, set.currentDoorState},
		{hap.KindTargetDoorState, set.targetDoorState},
		{hap.KindObstructionDetected, set.obstructionDetected},
		{hap.KindBatteryLevel, set.batteryLevel},
		{hap.KindChargingState, set.chargingState},
		{hap.KindStatusLowBattery, set.statusLowBattery},
		{hap.KindSecuritySystemCurrent, set.securityCurrentState},
		{hap.KindSecuritySystemTarget, set.securityTargetState},
		{hap.KindCurrentRelativeHumidity, set.floatValue},
		{hap.KindCurrentAmbientLightLevel, set.floatValue},
	}

	funcs := make(map[hap.Kind]Func, len(entries))
	for _, e := range entries {
		if _, dup := funcs[e.kind]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, e.kind)
		}
		funcs[e.kind] = e.fn
	}
	return &Registry{funcs: funcs, log: log}, nil
}

// ByKind returns the converter registered for kind, if any.
func (r *Registry) ByKind(kind hap.Kind) (Func, bool) {
	fn, ok := r.funcs[kind]
	return fn, ok
}

// Len reports the number of registered converters.
func (r *Registry) Len() int { return len(r.funcs) }

// Dispatch runs the converter for the request's characteristic kind.
// Failures are terminal here: an unregistered kind or a converter error is
// logged and the characteristic keeps its previous value. Dispatch never
// returns an error to the bridge.
func (r *Registry) Dispatch(ctx context.Context, req Request) {
	kind := req.Characteristic.Kind()
	fn, ok := r.funcs[kind]
	if !ok {
		r.log.Warn("no converter registered",
			"kind", string(kind),
			"device_ids", req.DeviceIDs,
		)
		return
	}
	if err := fn(ctx, req); err != nil {
		r.log.Warn("conversion skipped",
			"kind", string(kind),
			"device_ids", req.DeviceIDs,
			"error", err,
		)
	}
}
