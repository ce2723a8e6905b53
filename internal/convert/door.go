package convert

import (
	"context"
	"fmt"

	"github.com/danharmsworth/hcbridge/internal/hap"
)

// Door-state converters. The hub reports garage doors and gates with a
// textual state property (Opened, Opening, Closing, Closed) plus a numeric
// position value. The state string wins when present; otherwise the numeric
// value selects a coarse fallback.
//
// The current and target mappings are deliberately asymmetric for the
// transitional states. While a door is Opening the current state reports
// CLOSED (it has not reached open yet) but the target state reports OPEN
// (that is where it is headed), and vice versa for Closing.

// currentDoorStates maps hub state strings onto CurrentDoorState values.
var currentDoorStates = map[string]int{
	"Opened":  hap.DoorOpen,
	"Opening": hap.DoorClosed,
	"Closing": hap.DoorOpen,
	"Closed":  hap.DoorClosed,
}

// targetDoorStates maps hub state strings onto TargetDoorState values.
var targetDoorStates = map[string]int{
	"Opened":  hap.DoorOpen,
	"Opening": hap.DoorOpen,
	"Closing": hap.DoorClosed,
	"Closed":  hap.DoorClosed,
}

// currentDoorState resolves the door's present position. With no usable
// state string the numeric value falls back to CLOSED at 0, OPEN at 99 and
// STOPPED anywhere in between.
func (s *Set) currentDoorState(_ context.Context, req Request) error {
	if state, ok := req.Properties.State(); ok {
		mapped, known := currentDoorStates[state]
		if !known {
			return fmt.Errorf("%w: door state %q", ErrUnknownEnum, state)
		}
		req.Characteristic.UpdateValue(mapped)
		return nil
	}
	v, ok := req.Properties.Value()
	if !ok {
		return nil
	}
	switch v {
	case doorClosedRaw:
		req.Characteristic.UpdateValue(hap.DoorClosed)
	case doorOpenRaw:
		req.Characteristic.UpdateValue(hap.DoorOpen)
	default:
		req.Characteristic.UpdateValue(hap.DoorStopped)
	}
	return nil
}

// targetDoorState resolves where the door is headed. The numeric fallback
// never yields STOPPED: a target state is always one of OPEN or CLOSED, so
// an ambiguous mid-travel value defaults to CLOSED.
func (s *Set) targetDoorState(_ context.Context, req Request) error {
	if state, ok := req.Properties.State(); ok {
		mapped, known := targetDoorStates[state]
		if !known {
			return fmt.Errorf("%w: door state %q", ErrUnknownEnum, state)
		}
		req.Characteristic.UpdateValue(mapped)
		return nil
	}
	v, ok := req.Properties.Value()
	if !ok {
		return nil
	}
	if v == doorOpenRaw {
		req.Characteristic.UpdateValue(hap.DoorOpen)
	} else {
		req.Characteristic.UpdateValue(hap.DoorClosed)
	}
	return nil
}

// obstructionDetected always reports no obstruction. The hub has no
// obstruction signal for its door devices.
func (s *Set) obstructionDetected(_ context.Context, req Request) error {
	req.Characteristic.UpdateValue(false)
	return nil
}
