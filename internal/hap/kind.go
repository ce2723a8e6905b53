package hap

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies one translatable characteristic kind.
//
// The converter registry is keyed by Kind rather than by the accessory
// framework's runtime identity values; Table performs the identity→Kind
// resolution once at startup.
type Kind string

// The closed set of characteristic kinds the bridge translates.
const (
	KindOn                        Kind = "On"
	KindBrightness                Kind = "Brightness"
	KindHue                       Kind = "Hue"
	KindSaturation                Kind = "Saturation"
	KindMotionDetected            Kind = "MotionDetected"
	KindContactSensorState        Kind = "ContactSensorState"
	KindLeakDetected              Kind = "LeakDetected"
	KindSmokeDetected             Kind = "SmokeDetected"
	KindCarbonMonoxideDetected    Kind = "CarbonMonoxideDetected"
	KindCarbonMonoxideLevel       Kind = "CarbonMonoxideLevel"
	KindCarbonMonoxidePeakLevel   Kind = "CarbonMonoxidePeakLevel"
	KindOutletInUse               Kind = "OutletInUse"
	KindLockCurrentState          Kind = "LockCurrentState"
	KindLockTargetState           Kind = "LockTargetState"
	KindActive                    Kind = "Active"
	KindInUse                     Kind = "InUse"
	KindProgrammableSwitchEvent   Kind = "ProgrammableSwitchEvent"
	KindCurrentPosition           Kind = "CurrentPosition"
	KindTargetPosition            Kind = "TargetPosition"
	KindPositionState             Kind = "PositionState"
	KindCurrentHorizontalTilt     Kind = "CurrentHorizontalTiltAngle"
	KindTargetHorizontalTilt      Kind = "TargetHorizontalTiltAngle"
	KindCurrentTemperature        Kind = "CurrentTemperature"
	KindTargetTemperature         Kind = "TargetTemperature"
	KindCurrentHeatingCooling     Kind = "CurrentHeatingCoolingState"
	KindTargetHeatingCooling      Kind = "TargetHeatingCoolingState"
	KindTemperatureDisplayUnits   Kind = "TemperatureDisplayUnits"
	KindCurrentDoorState          Kind = "CurrentDoorState"
	KindTargetDoorState           Kind = "TargetDoorState"
	KindObstructionDetected       Kind = "ObstructionDetected"
	KindBatteryLevel              Kind = "BatteryLevel"
	KindChargingState             Kind = "ChargingState"
	KindStatusLowBattery          Kind = "StatusLowBattery"
	KindSecuritySystemCurrent     Kind = "SecuritySystemCurrentState"
	KindSecuritySystemTarget      Kind = "SecuritySystemTargetState"
	KindCurrentRelativeHumidity   Kind = "CurrentRelativeHumidity"
	KindCurrentAmbientLightLevel  Kind = "CurrentAmbientLightLevel"
)

// appleBaseSuffix is the shared tail of every Apple-defined characteristic
// UUID. Full-form identities are "0000XXXX" + this suffix, where XXXX is the
// short type with leading zeros.
const appleBaseSuffix = "-0000-1000-8000-0026BB765291"

// kindTypes maps each Kind to its Apple-defined short characteristic type.
var kindTypes = map[Kind]string{
	KindOn:                       "25",
	KindBrightness:               "8",
	KindHue:                      "13",
	KindSaturation:               "2F",
	KindMotionDetected:           "22",
	KindContactSensorState:       "6A",
	KindLeakDetected:             "70",
	KindSmokeDetected:            "76",
	KindCarbonMonoxideDetected:   "69",
	KindCarbonMonoxideLevel:      "90",
	KindCarbonMonoxidePeakLevel:  "91",
	KindOutletInUse:              "26",
	KindLockCurrentState:         "1D",
	KindLockTargetState:          "1E",
	KindActive:                   "B0",
	KindInUse:                    "D2",
	KindProgrammableSwitchEvent:  "73",
	KindCurrentPosition:          "6D",
	KindTargetPosition:           "7C",
	KindPositionState:            "72",
	KindCurrentHorizontalTilt:    "6C",
	KindTargetHorizontalTilt:     "7B",
	KindCurrentTemperature:       "11",
	KindTargetTemperature:        "35",
	KindCurrentHeatingCooling:    "F",
	KindTargetHeatingCooling:     "33",
	KindTemperatureDisplayUnits:  "36",
	KindCurrentDoorState:         "E",
	KindTargetDoorState:          "32",
	KindObstructionDetected:      "24",
	KindBatteryLevel:             "68",
	KindChargingState:            "8F",
	KindStatusLowBattery:         "79",
	KindSecuritySystemCurrent:    "66",
	KindSecuritySystemTarget:     "67",
	KindCurrentRelativeHumidity:  "10",
	KindCurrentAmbientLightLevel: "6B",
}

// String returns the kind's name.
func (k Kind) String() string {
	return string(k)
}

// Type returns the Apple-defined short characteristic type for the kind,
// or "" if the kind is not in the catalog.
func (k Kind) Type() string {
	return kindTypes[k]
}

// UUID returns the full-form characteristic type UUID for the kind.
func (k Kind) UUID() string {
	short := kindTypes[k]
	if short == "" {
		return ""
	}
	padded := strings.Repeat("0", 8-len(short)) + short
	return padded + appleBaseSuffix
}

// KindFromName returns the Kind whose name matches s.
//
// Used to resolve characteristic names from configuration files.
func KindFromName(s string) (Kind, bool) {
	k := Kind(s)
	if _, ok := kindTypes[k]; ok {
		return k, true
	}
	return "", false
}

// Kinds returns every catalogued Kind. Order is unspecified.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindTypes))
	for k := range kindTypes {
		out = append(out, k)
	}
	return out
}

// Table resolves accessory-framework characteristic identities to Kinds.
//
// It accepts the short type form ("25", with or without leading zeros) and
// the full UUID form ("00000025-0000-1000-8000-0026BB765291", any case).
// Built once at startup; immutable afterwards.
type Table struct {
	byType map[string]Kind
}

// NewTable builds the identity translation table from the built-in catalog.
func NewTable() *Table {
	byType := make(map[string]Kind, len(kindTypes))
	for kind, short := range kindTypes {
		byType[short] = kind
	}
	return &Table{byType: byType}
}

// Resolve maps a framework identity value to its Kind.
//
// Parameters:
//   - id: Short type or full-form UUID, any case
//
// Returns:
//   - Kind: The resolved kind
//   - bool: false if the identity is not in the catalog
func (t *Table) Resolve(id string) (Kind, bool) {
	short := canonicalType(id)
	if short == "" {
		return "", false
	}
	kind, ok := t.byType[short]
	return kind, ok
}

// canonicalType reduces an identity string to the short type form.
//
// Full UUIDs are parsed and must carry the Apple base suffix; anything else
// is treated as a short type with leading zeros stripped.
func canonicalType(id string) string {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return ""
	}

	if u, err := uuid.Parse(id); err == nil {
		s := strings.ToUpper(u.String())
		if !strings.HasSuffix(s, appleBaseSuffix) {
			return ""
		}
		id = strings.TrimSuffix(s, appleBaseSuffix)
	}

	short := strings.TrimLeft(id, "0")
	if short == "" {
		// "00000000" would strip to nothing; not a valid characteristic type.
		return ""
	}
	return short
}
