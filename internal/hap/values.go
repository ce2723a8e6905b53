package hap

// Enumeration values written by the converters. These mirror the HomeKit
// characteristic definitions; the numeric values are part of the external
// contract and must not be renumbered.

// ContactSensorState values.
const (
	ContactDetected    = 0 // contact made (door closed)
	ContactNotDetected = 1
)

// LeakDetected values.
const (
	LeakNotDetected = 0
	LeakDetected    = 1
)

// SmokeDetected values.
const (
	SmokeNotDetected = 0
	SmokeDetected    = 1
)

// CarbonMonoxideDetected values.
const (
	CONormal   = 0
	COAbnormal = 1
)

// LockCurrentState / LockTargetState values.
const (
	LockUnsecured = 0
	LockSecured   = 1
)

// Active values.
const (
	Inactive = 0
	ActiveOn = 1
)

// InUse values.
const (
	NotInUse = 0
	InUse    = 1
)

// ProgrammableSwitchEvent values.
const (
	SinglePress = 0
	DoublePress = 1
	LongPress   = 2
)

// PositionState values.
const (
	PositionDecreasing = 0
	PositionIncreasing = 1
	PositionStopped    = 2
)

// CurrentDoorState / TargetDoorState values. TargetDoorState only uses
// DoorOpen and DoorClosed; the remaining values are current-state only.
const (
	DoorOpen    = 0
	DoorClosed  = 1
	DoorOpening = 2
	DoorClosing = 3
	DoorStopped = 4
)

// CurrentHeatingCoolingState / TargetHeatingCoolingState values.
const (
	HeatingCoolingOff  = 0
	HeatingCoolingHeat = 1
	HeatingCoolingCool = 2
	HeatingCoolingAuto = 3 // target only
)

// TemperatureDisplayUnits values.
const (
	UnitsCelsius    = 0
	UnitsFahrenheit = 1
)

// ChargingState values.
const (
	NotCharging   = 0
	Charging      = 1
	NotChargeable = 2
)

// StatusLowBattery values.
const (
	BatteryNormal = 0
	BatteryLow    = 1
)

// SecuritySystemCurrentState / SecuritySystemTargetState values.
// AlarmTriggered is current-state only; a target state can never be
// "triggered".
const (
	SecurityStayArm        = 0
	SecurityAwayArm        = 1
	SecurityNightArm       = 2
	SecurityDisarmed       = 3
	SecurityAlarmTriggered = 4
)
