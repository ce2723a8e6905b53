package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/hub"
)

func climateZone(mode string, temp float64) *hub.ClimateZone {
	return &hub.ClimateZone{
		ID: 7,
		Properties: hub.ClimateZoneProperties{
			Mode:                      ptrString(mode),
			CurrentTemperatureHeating: ptrFloat(temp),
		},
	}
}

func TestTemperatureClimateZone(t *testing.T) {
	zones := &fakeZones{climate: climateZone("Heat", 21.5)}
	s := NewSet(zones)

	ch, err := run(s.temperature, hap.KindCurrentTemperature, hap.Service{IsClimateZone: true}, hub.Properties{})
	if err != nil {
		t.Fatalf("temperature() error = %v", err)
	}
	if ch.value != 21.5 {
		t.Errorf("temperature() wrote %v, want 21.5", ch.value)
	}
	if len(zones.climateIDs) != 1 || zones.climateIDs[0] != 7 {
		t.Errorf("fetched climate zones %v, want [7]", zones.climateIDs)
	}
}

func TestTemperatureHeatingZone(t *testing.T) {
	zones := &fakeZones{heating: &hub.HeatingZone{
		ID:         7,
		Properties: hub.HeatingZoneProperties{CurrentTemperature: ptrFloat(19.0)},
	}}
	s := NewSet(zones)

	ch, err := run(s.temperature, hap.KindCurrentTemperature, hap.Service{IsHeatingZone: true}, hub.Properties{})
	if err != nil {
		t.Fatalf("temperature() error = %v", err)
	}
	if ch.value != 19.0 {
		t.Errorf("temperature() wrote %v, want 19", ch.value)
	}
}

func TestTemperaturePlainDevice(t *testing.T) {
	s := NewSet(nil)

	ch, err := run(s.temperature, hap.KindCurrentTemperature, hap.Service{}, hub.Properties{"value": 23.4})
	if err != nil {
		t.Fatalf("temperature() error = %v", err)
	}
	if ch.value != 23.4 {
		t.Errorf("temperature() wrote %v, want 23.4", ch.value)
	}
}

func TestTemperatureFetchFailure(t *testing.T) {
	zones := &fakeZones{err: errors.New("hub unreachable")}
	s := NewSet(zones)

	ch, err := run(s.temperature, hap.KindCurrentTemperature, hap.Service{IsClimateZone: true}, hub.Properties{})
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("temperature() error = %v, want ErrFetchFailed", err)
	}
	if ch.updates != 0 {
		t.Errorf("temperature() updated despite fetch failure")
	}
}

func TestTemperatureMissingField(t *testing.T) {
	zones := &fakeZones{climate: &hub.ClimateZone{ID: 7}}
	s := NewSet(zones)

	ch, err := run(s.temperature, hap.KindCurrentTemperature, hap.Service{IsClimateZone: true}, hub.Properties{})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("temperature() error = %v, want ErrMissingField", err)
	}
	if ch.updates != 0 {
		t.Errorf("temperature() updated despite missing field")
	}
}

func TestTemperatureNoDeviceID(t *testing.T) {
	s := NewSet(&fakeZones{})

	ch := newFake(hap.KindCurrentTemperature)
	err := s.temperature(context.Background(), Request{
		Characteristic: ch,
		Service:        hap.Service{IsClimateZone: true},
		Properties:     hub.Properties{},
	})
	if !errors.Is(err, ErrNoDevice) {
		t.Fatalf("temperature() error = %v, want ErrNoDevice", err)
	}
}

func TestTemperatureNilFetcher(t *testing.T) {
	s := NewSet(nil)

	_, err := run(s.temperature, hap.KindCurrentTemperature, hap.Service{IsClimateZone: true}, hub.Properties{})
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("temperature() error = %v, want ErrFetchFailed", err)
	}
}

func TestTargetTemperatureClimateZone(t *testing.T) {
	zones := &fakeZones{climate: &hub.ClimateZone{
		ID: 7,
		Properties: hub.ClimateZoneProperties{
			Mode:                     ptrString("Heat"),
			TargetTemperatureHeating: ptrFloat(22.0),
		},
	}}
	s := NewSet(zones)

	ch, err := run(s.targetTemperature, hap.KindTargetTemperature, hap.Service{IsClimateZone: true}, hub.Properties{})
	if err != nil {
		t.Fatalf("targetTemperature() error = %v", err)
	}
	if ch.value != 22.0 {
		t.Errorf("targetTemperature() wrote %v, want 22", ch.value)
	}
}

func TestTargetTemperatureHeatingZone(t *testing.T) {
	zones := &fakeZones{heating: &hub.HeatingZone{
		ID:         7,
		Properties: hub.HeatingZoneProperties{TargetTemperature: ptrFloat(18.5)},
	}}
	s := NewSet(zones)

	ch, err := run(s.targetTemperature, hap.KindTargetTemperature, hap.Service{IsHeatingZone: true}, hub.Properties{})
	if err != nil {
		t.Fatalf("targetTemperature() error = %v", err)
	}
	if ch.value != 18.5 {
		t.Errorf("targetTemperature() wrote %v, want 18.5", ch.value)
	}
}

func TestTargetTemperaturePlainDevice(t *testing.T) {
	s := NewSet(nil)

	ch, err := run(s.targetTemperature, hap.KindTargetTemperature, hap.Service{}, hub.Properties{"value": 20.0})
	if err != nil {
		t.Fatalf("targetTemperature() error = %v", err)
	}
	if ch.value != 20.0 {
		t.Errorf("targetTemperature() wrote %v, want 20", ch.value)
	}
}

func TestTargetTemperatureMissingField(t *testing.T) {
	zones := &fakeZones{climate: climateZone("Heat", 21.5)}
	s := NewSet(zones)

	ch, err := run(s.targetTemperature, hap.KindTargetTemperature, hap.Service{IsClimateZone: true}, hub.Properties{})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("targetTemperature() error = %v, want ErrMissingField", err)
	}
	if ch.updates != 0 {
		t.Errorf("targetTemperature() updated despite missing field")
	}
}

func TestHeatingCoolingStateClimateModes(t *testing.T) {
	tests := []struct {
		mode string
		want int
	}{
		{"Off", hap.HeatingCoolingOff},
		{"Heat", hap.HeatingCoolingHeat},
		{"Cool", hap.HeatingCoolingCool},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			s := NewSet(&fakeZones{climate: climateZone(tt.mode, 20)})

			ch, err := run(s.heatingCoolingState, hap.KindCurrentHeatingCooling, hap.Service{IsClimateZone: true}, hub.Properties{})
			if err != nil {
				t.Fatalf("heatingCoolingState() error = %v", err)
			}
			if ch.value != tt.want {
				t.Errorf("heatingCoolingState(%q) wrote %v, want %v", tt.mode, ch.value, tt.want)
			}
		})
	}
}

func TestHeatingCoolingStateUnknownMode(t *testing.T) {
	s := NewSet(&fakeZones{climate: climateZone("Eco", 20)})

	ch, err := run(s.heatingCoolingState, hap.KindCurrentHeatingCooling, hap.Service{IsClimateZone: true}, hub.Properties{})
	if !errors.Is(err, ErrUnknownEnum) {
		t.Fatalf("heatingCoolingState() error = %v, want ErrUnknownEnum", err)
	}
	if ch.updates != 0 {
		t.Errorf("heatingCoolingState() updated despite unknown mode")
	}
}

// Heating zones have no mode; the state is always HEAT, with no fetch.
func TestHeatingCoolingStateHeatingZone(t *testing.T) {
	zones := &fakeZones{}
	s := NewSet(zones)

	ch, err := run(s.heatingCoolingState, hap.KindCurrentHeatingCooling, hap.Service{IsHeatingZone: true}, hub.Properties{})
	if err != nil {
		t.Fatalf("heatingCoolingState() error = %v", err)
	}
	if ch.value != hap.HeatingCoolingHeat {
		t.Errorf("heatingCoolingState() wrote %v, want HEAT", ch.value)
	}
	if len(zones.heatingIDs) != 0 {
		t.Errorf("heating zone state fetched %v, want no fetch", zones.heatingIDs)
	}
}

func TestDisplayUnitsFixed(t *testing.T) {
	s := NewSet(nil)

	ch, err := run(s.displayUnits, hap.KindTemperatureDisplayUnits, hap.Service{}, hub.Properties{})
	if err != nil {
		t.Fatalf("displayUnits() error = %v", err)
	}
	if ch.value != hap.UnitsCelsius {
		t.Errorf("displayUnits() wrote %v, want CELSIUS", ch.value)
	}
}
