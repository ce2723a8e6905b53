package convert

import (
	"context"
	"fmt"

	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/hub"
)

// ─── Test doubles ──────────────────────────────────────────────────

// fakeCharacteristic records UpdateValue calls.
type fakeCharacteristic struct {
	kind    hap.Kind
	props   hap.Props
	value   any
	updates int
}

func (f *fakeCharacteristic) Kind() hap.Kind   { return f.kind }
func (f *fakeCharacteristic) Props() hap.Props { return f.props }
func (f *fakeCharacteristic) UpdateValue(v any) {
	f.value = v
	f.updates++
}

// newFake creates a characteristic with its default props for kind.
func newFake(kind hap.Kind) *fakeCharacteristic {
	return &fakeCharacteristic{kind: kind, props: hap.DefaultProps(kind)}
}

// fakeLogger records Warn calls.
type fakeLogger struct {
	warnings []string
}

func (f *fakeLogger) Warn(msg string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprint(append([]any{msg}, args...)...))
}

// fakeZones serves canned climate/heating zones.
type fakeZones struct {
	climate    *hub.ClimateZone
	heating    *hub.HeatingZone
	err        error
	climateIDs []int
	heatingIDs []int
}

func (f *fakeZones) GetClimateZone(_ context.Context, id int) (*hub.ClimateZone, error) {
	f.climateIDs = append(f.climateIDs, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.climate, nil
}

func (f *fakeZones) GetHeatingZone(_ context.Context, id int) (*hub.HeatingZone, error) {
	f.heatingIDs = append(f.heatingIDs, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.heating, nil
}

// run invokes fn with a minimal request and returns the characteristic.
func run(fn Func, kind hap.Kind, svc hap.Service, props hub.Properties) (*fakeCharacteristic, error) {
	ch := newFake(kind)
	err := fn(context.Background(), Request{
		Characteristic: ch,
		Service:        svc,
		DeviceIDs:      []int{7},
		Properties:     props,
	})
	return ch, err
}

func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }
