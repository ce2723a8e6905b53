package convert

import (
	"context"
	"fmt"

	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/hub"
)

// modeStates maps the hub's climate mode names onto heating/cooling state
// values. An unmapped mode leaves the characteristic unchanged.
var modeStates = map[string]int{
	"Off":  hap.HeatingCoolingOff,
	"Heat": hap.HeatingCoolingHeat,
	"Cool": hap.HeatingCoolingCool,
}

// The four climate converters are the only asynchronous ones: climate and
// heating zones keep their state behind a secondary hub fetch instead of in
// the per-device property bag. Fetch failures and missing fields are logged
// by the registry and skipped; they never reach the bridge.

// temperature reads the measured zone temperature for climate/heating-zone
// services, or the plain value property otherwise (CurrentTemperature).
func (s *Set) temperature(ctx context.Context, req Request) error {
	switch {
	case req.Service.IsClimateZone:
		zone, err := s.fetchClimateZone(ctx, req)
		if err != nil {
			return err
		}
		if zone.Properties.CurrentTemperatureHeating == nil {
			return fmt.Errorf("%w: climate zone %d currentTemperatureHeating", ErrMissingField, zone.ID)
		}
		req.Characteristic.UpdateValue(*zone.Properties.CurrentTemperatureHeating)

	case req.Service.IsHeatingZone:
		zone, err := s.fetchHeatingZone(ctx, req)
		if err != nil {
			return err
		}
		if zone.Properties.CurrentTemperature == nil {
			return fmt.Errorf("%w: heating zone %d currentTemperature", ErrMissingField, zone.ID)
		}
		req.Characteristic.UpdateValue(*zone.Properties.CurrentTemperature)

	default:
		v, ok := req.Properties.Value()
		if !ok {
			return nil
		}
		req.Characteristic.UpdateValue(v)
	}
	return nil
}

// targetTemperature reads the zone setpoint for climate/heating-zone
// services, or the plain value property otherwise (TargetTemperature).
func (s *Set) targetTemperature(ctx context.Context, req Request) error {
	switch {
	case req.Service.IsClimateZone:
		zone, err := s.fetchClimateZone(ctx, req)
		if err != nil {
			return err
		}
		if zone.Properties.TargetTemperatureHeating == nil {
			return fmt.Errorf("%w: climate zone %d targetTemperatureHeating", ErrMissingField, zone.ID)
		}
		req.Characteristic.UpdateValue(*zone.Properties.TargetTemperatureHeating)

	case req.Service.IsHeatingZone:
		zone, err := s.fetchHeatingZone(ctx, req)
		if err != nil {
			return err
		}
		if zone.Properties.TargetTemperature == nil {
			return fmt.Errorf("%w: heating zone %d targetTemperature", ErrMissingField, zone.ID)
		}
		req.Characteristic.UpdateValue(*zone.Properties.TargetTemperature)

	default:
		v, ok := req.Properties.Value()
		if !ok {
			return nil
		}
		req.Characteristic.UpdateValue(v)
	}
	return nil
}

// heatingCoolingState reads the zone mode for climate-zone services
// (CurrentHeatingCoolingState, TargetHeatingCoolingState). Heating zones
// have no mode concept and always report HEAT.
func (s *Set) heatingCoolingState(ctx context.Context, req Request) error {
	switch {
	case req.Service.IsClimateZone:
		zone, err := s.fetchClimateZone(ctx, req)
		if err != nil {
			return err
		}
		if zone.Properties.Mode == nil {
			return fmt.Errorf("%w: climate zone %d mode", ErrMissingField, zone.ID)
		}
		state, ok := modeStates[*zone.Properties.Mode]
		if !ok {
			return fmt.Errorf("%w: mode %q", ErrUnknownEnum, *zone.Properties.Mode)
		}
		req.Characteristic.UpdateValue(state)

	case req.Service.IsHeatingZone:
		req.Characteristic.UpdateValue(hap.HeatingCoolingHeat)

	default:
		v, ok := req.Properties.Value()
		if !ok {
			return nil
		}
		req.Characteristic.UpdateValue(int(v))
	}
	return nil
}

// displayUnits is a fixed-value converter: the hub reports Celsius only.
func (s *Set) displayUnits(_ context.Context, req Request) error {
	req.Characteristic.UpdateValue(hap.UnitsCelsius)
	return nil
}

func (s *Set) fetchClimateZone(ctx context.Context, req Request) (*hub.ClimateZone, error) {
	id, err := req.zoneID()
	if err != nil {
		return nil, err
	}
	if s.zones == nil {
		return nil, fmt.Errorf("%w: no zone fetcher configured", ErrFetchFailed)
	}
	zone, err := s.zones.GetClimateZone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: climate zone %d: %w", ErrFetchFailed, id, err)
	}
	return zone, nil
}

func (s *Set) fetchHeatingZone(ctx context.Context, req Request) (*hub.HeatingZone, error) {
	id, err := req.zoneID()
	if err != nil {
		return nil, err
	}
	if s.zones == nil {
		return nil, fmt.Errorf("%w: no zone fetcher configured", ErrFetchFailed)
	}
	zone, err := s.zones.GetHeatingZone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: heating zone %d: %w", ErrFetchFailed, id, err)
	}
	return zone, nil
}
