package convert

import (
	"context"
	"fmt"

	"github.com/danharmsworth/hcbridge/internal/hap"
)

// Security-system converters. The hub's alarm partition reports its state
// as a status string; two fixed lookup tables translate it for the current
// and target characteristics. AlarmTriggered exists only in the current
// table: a triggered alarm is a condition, never a target.

// securityCurrentStates maps hub status strings onto
// SecuritySystemCurrentState values.
var securityCurrentStates = map[string]int{
	"StayArmed":      hap.SecurityStayArm,
	"AwayArmed":      hap.SecurityAwayArm,
	"NightArmed":     hap.SecurityNightArm,
	"Disarmed":       hap.SecurityDisarmed,
	"AlarmTriggered": hap.SecurityAlarmTriggered,
}

// securityTargetStates maps hub status strings onto
// SecuritySystemTargetState values.
var securityTargetStates = map[string]int{
	"StayArmed":  hap.SecurityStayArm,
	"AwayArmed":  hap.SecurityAwayArm,
	"NightArmed": hap.SecurityNightArm,
	"Disarmed":   hap.SecurityDisarmed,
}

func (s *Set) securityCurrentState(_ context.Context, req Request) error {
	return securityState(req, securityCurrentStates)
}

func (s *Set) securityTargetState(_ context.Context, req Request) error {
	return securityState(req, securityTargetStates)
}

// securityState applies one of the two lookup tables. A status missing
// from the table leaves the characteristic unchanged. AlarmTriggered on
// the target characteristic is the expected case of that: the table omits
// it on purpose, so the skip is silent rather than logged.
func securityState(req Request, table map[string]int) error {
	status, ok := req.Properties.ValueString()
	if !ok {
		return nil
	}
	mapped, known := table[status]
	if !known {
		if _, current := securityCurrentStates[status]; current {
			return nil
		}
		return fmt.Errorf("%w: security status %q", ErrUnknownEnum, status)
	}
	req.Characteristic.UpdateValue(mapped)
	return nil
}
