package convert

import (
	"errors"
	"testing"

	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/hub"
)

func TestSecurityCurrentState(t *testing.T) {
	s := NewSet(nil)

	tests := []struct {
		status string
		want   int
	}{
		{"StayArmed", hap.SecurityStayArm},
		{"AwayArmed", hap.SecurityAwayArm},
		{"NightArmed", hap.SecurityNightArm},
		{"Disarmed", hap.SecurityDisarmed},
		{"AlarmTriggered", hap.SecurityAlarmTriggered},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			ch, err := run(s.securityCurrentState, hap.KindSecuritySystemCurrent, hap.Service{}, hub.Properties{"value": tt.status})
			if err != nil {
				t.Fatalf("securityCurrentState() error = %v", err)
			}
			if ch.value != tt.want {
				t.Errorf("securityCurrentState(%q) wrote %v, want %v", tt.status, ch.value, tt.want)
			}
		})
	}
}

func TestSecurityTargetState(t *testing.T) {
	s := NewSet(nil)

	tests := []struct {
		status string
		want   int
	}{
		{"StayArmed", hap.SecurityStayArm},
		{"AwayArmed", hap.SecurityAwayArm},
		{"NightArmed", hap.SecurityNightArm},
		{"Disarmed", hap.SecurityDisarmed},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			ch, err := run(s.securityTargetState, hap.KindSecuritySystemTarget, hap.Service{}, hub.Properties{"value": tt.status})
			if err != nil {
				t.Fatalf("securityTargetState() error = %v", err)
			}
			if ch.value != tt.want {
				t.Errorf("securityTargetState(%q) wrote %v, want %v", tt.status, ch.value, tt.want)
			}
		})
	}
}

// AlarmTriggered exists only in the current table: the target
// characteristic must keep its previous value, silently.
func TestSecurityTargetIgnoresAlarmTriggered(t *testing.T) {
	s := NewSet(nil)

	ch, err := run(s.securityTargetState, hap.KindSecuritySystemTarget, hap.Service{}, hub.Properties{"value": "AlarmTriggered"})
	if err != nil {
		t.Fatalf("securityTargetState() error = %v", err)
	}
	if ch.updates != 0 {
		t.Errorf("securityTargetState() updated %d times, want no update", ch.updates)
	}
}

func TestSecurityUnmappedStatus(t *testing.T) {
	s := NewSet(nil)

	ch, err := run(s.securityCurrentState, hap.KindSecuritySystemCurrent, hap.Service{}, hub.Properties{"value": "PartiallyArmed"})
	if !errors.Is(err, ErrUnknownEnum) {
		t.Fatalf("securityCurrentState() error = %v, want ErrUnknownEnum", err)
	}
	if ch.updates != 0 {
		t.Errorf("securityCurrentState() updated despite unmapped status")
	}
}

func TestSecurityAbsentStatusSkips(t *testing.T) {
	s := NewSet(nil)

	ch, err := run(s.securityCurrentState, hap.KindSecuritySystemCurrent, hap.Service{}, hub.Properties{})
	if err != nil {
		t.Fatalf("securityCurrentState() error = %v", err)
	}
	if ch.updates != 0 {
		t.Errorf("securityCurrentState() updated %d times, want skip", ch.updates)
	}
}
