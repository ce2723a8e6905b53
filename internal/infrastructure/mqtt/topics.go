package mqtt

import "fmt"

// Topic prefixes for the bridge's state mirror.
//
// Every characteristic value the bridge accepts is published retained under
// the state prefix, so dashboards and automations can follow accessory state
// without polling the hub themselves.
const (
	// TopicPrefix is the base for all bridge topics.
	TopicPrefix = "hcbridge"

	// TopicPrefixState is the base for characteristic state topics.
	// Scheme: hcbridge/state/{device_id}/{characteristic}
	TopicPrefixState = "hcbridge/state"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "hcbridge/system"
)

// Topics provides builders for the bridge's MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	stateTopic := topics.CharacteristicState(42, "Brightness")
//	// Returns: "hcbridge/state/42/Brightness"
type Topics struct{}

// CharacteristicState returns the retained-state topic for one
// characteristic of one device.
//
// Example: hcbridge/state/42/Brightness
func (Topics) CharacteristicState(deviceID int, characteristic string) string {
	return fmt.Sprintf("%s/%d/%s", TopicPrefixState, deviceID, characteristic)
}

// DeviceStates returns a pattern matching every characteristic of one device.
//
// Pattern: hcbridge/state/42/+
func (Topics) DeviceStates(deviceID int) string {
	return fmt.Sprintf("%s/%d/+", TopicPrefixState, deviceID)
}

// AllStates returns a pattern matching all characteristic state updates.
//
// Pattern: hcbridge/state/+/+
func (Topics) AllStates() string {
	return fmt.Sprintf("%s/+/+", TopicPrefixState)
}

// SystemStatus returns the system status topic, also used for the LWT.
//
// Example: hcbridge/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllTopics returns a pattern matching all bridge topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: hcbridge/#
func (Topics) AllTopics() string {
	return TopicPrefix + "/#"
}
