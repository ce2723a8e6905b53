package hub

// Device is one device record from GET /api/devices.
type Device struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	RoomID     int        `json:"roomID"`
	Type       string     `json:"type"`
	Enabled    bool       `json:"enabled"`
	Properties Properties `json:"properties"`
}

// ClimateZone is one zone record from GET /api/panels/climate/{id}.
//
// Pointer fields distinguish "field absent in the response" from zero
// values; the temperature converters treat absence as a skip, not as 0.
type ClimateZone struct {
	ID         int                   `json:"id"`
	Name       string                `json:"name"`
	Properties ClimateZoneProperties `json:"properties"`
}

// ClimateZoneProperties holds the zone fields the converters read.
type ClimateZoneProperties struct {
	Mode                      *string  `json:"mode"`
	CurrentTemperatureHeating *float64 `json:"currentTemperatureHeating"`
	TargetTemperatureHeating  *float64 `json:"targetTemperatureHeating"`
}

// HeatingZone is one zone record from GET /api/panels/heating/{id}.
type HeatingZone struct {
	ID         int                   `json:"id"`
	Name       string                `json:"name"`
	Properties HeatingZoneProperties `json:"properties"`
}

// HeatingZoneProperties holds the zone fields the converters read.
// Heating zones carry no mode; their state is always HEAT.
type HeatingZoneProperties struct {
	CurrentTemperature *float64 `json:"currentTemperature"`
	TargetTemperature  *float64 `json:"targetTemperature"`
}
