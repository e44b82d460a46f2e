package entity

// ConfigType describes the kind of value a known configuration key holds.
// It is descriptive only; Boolean additionally changes how the editor activates an entry.
type ConfigType int

const (
	ConfigTypeString ConfigType = iota
	ConfigTypeInteger
	ConfigTypeBoolean
)

// String returns the display name of the type.
func (t ConfigType) String() string {
	switch t {
	case ConfigTypeString:
		return "String"
	case ConfigTypeInteger:
		return "Integer"
	case ConfigTypeBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so schema dumps show names, not numbers.
func (t ConfigType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ConfigSchema describes a single recognized configuration key.
// Schema tables are static and never mutated after startup.
type ConfigSchema struct {
	// Key is the exact key as written in the file (e.g., "rpcport")
	Key string `json:"key" yaml:"key"`

	// ValueType is the kind of value the key holds
	ValueType ConfigType `json:"type" yaml:"type"`

	// Section groups related keys (e.g., "Network", "RPC")
	Section string `json:"section" yaml:"section"`

	// Description explains the purpose of this key
	Description string `json:"description" yaml:"description"`

	// Default is the daemon's default value as a string representation
	Default string `json:"default" yaml:"default"`
}

// IsBoolean reports whether the key is a 0/1 flag.
func (s ConfigSchema) IsBoolean() bool {
	return s.ValueType == ConfigTypeBoolean
}
