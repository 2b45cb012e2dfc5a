package models

// MappingConfig maps a schema field name to a source column name.
// Entries may be missing or point at columns that do not exist.
type MappingConfig map[string]string

// ProcessRequest carries the caller-supplied inputs of one process run.
type ProcessRequest struct {
	// Mapping assigns source columns to schema fields.
	Mapping MappingConfig `json:"mapping" yaml:"mapping"`
	// SplitColumn names the source column whose values partition the output.
	SplitColumn string `json:"split_column,omitempty" yaml:"split_column,omitempty"`
	// CustomValues fills a schema field with a constant for every row.
	CustomValues map[string]string `json:"custom_values,omitempty" yaml:"custom_values,omitempty"`
	// Sheet is the optional sheet name hint.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
}
