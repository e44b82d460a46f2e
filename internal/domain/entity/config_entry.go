package entity

// CustomDescription is shown for keys that have no schema.
const CustomDescription = "Custom configuration option."

// ConfigEntry is one configuration line during an editing session.
//
// Enabled=false means the key is known but absent from the file: Value holds the
// schema default and the entry is not written on save. Entries without a schema
// were found in the file and are always enabled.
type ConfigEntry struct {
	Key     string
	Value   string
	Schema  *ConfigSchema
	Enabled bool
}

// NewKnownEntry creates an entry backed by a schema row.
func NewKnownEntry(schema *ConfigSchema, value string, enabled bool) *ConfigEntry {
	return &ConfigEntry{
		Key:     schema.Key,
		Value:   value,
		Schema:  schema,
		Enabled: enabled,
	}
}

// NewDefaultEntry creates a disabled entry holding the schema default.
func NewDefaultEntry(schema *ConfigSchema) *ConfigEntry {
	return NewKnownEntry(schema, schema.Default, false)
}

// NewUnknownEntry creates an entry for a key not present in the schema.
func NewUnknownEntry(key, value string) *ConfigEntry {
	return &ConfigEntry{
		Key:     key,
		Value:   value,
		Enabled: true,
	}
}

// IsKnown reports whether the entry is backed by a schema row.
func (e *ConfigEntry) IsKnown() bool {
	return e.Schema != nil
}

// IsBoolean reports whether the entry is a known boolean flag.
func (e *ConfigEntry) IsBoolean() bool {
	return e.Schema != nil && e.Schema.IsBoolean()
}

// TypeName returns the schema type name, or "Unknown" for custom keys.
func (e *ConfigEntry) TypeName() string {
	if e.Schema == nil {
		return "Unknown"
	}
	return e.Schema.ValueType.String()
}

// Description returns the schema description, or a generic text for custom keys.
func (e *ConfigEntry) Description() string {
	if e.Schema == nil {
		return CustomDescription
	}
	return e.Schema.Description
}

// ConfigSection is a named group of entries shown as one editor tab.
type ConfigSection struct {
	Name  string
	Items []*ConfigEntry
}

// EnabledCount returns how many entries of the section will be written on save.
func (s ConfigSection) EnabledCount() int {
	n := 0
	for _, item := range s.Items {
		if item.Enabled {
			n++
		}
	}
	return n
}
