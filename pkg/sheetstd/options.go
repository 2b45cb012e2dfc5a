// Package sheetstd reconciles heterogeneous question spreadsheets against a
// canonical schema and writes standardized, optionally split, outputs.
package sheetstd

import (
	"time"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/emit"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/parser"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/standardize"
)

// DefaultOptionalFields are schema fields that may stay unmapped without
// producing a soft error.
var DefaultOptionalFields = []string{
	"Recording Time Limit:(Upto 5 mins)",
	"Retake Allowed:(Upto 5 mins)",
	"Set Prep Time (0.5 to 5 mins)",
	"Proofreading Status",
	"Editor Email",
	"Differential Scoring",
	"Answer Explanation",
	"Topics",
}

// Options configures an Engine.
type Options struct {
	// SchemaPath is the reference template whose first sheet header defines
	// the schema field order.
	SchemaPath string
	// OutputDir receives one folder per processed input.
	OutputDir string
	// DefaultSheetName is preferred when no sheet hint is given.
	DefaultSheetName string
	// OutputSheetName names the data sheet of every output document.
	OutputSheetName string
	// QuestionField is the schema field quoted in row references.
	QuestionField string
	// OptionalFields may stay unmapped silently.
	OptionalFields []string
	// AllowedExtensions lists accepted input extensions.
	AllowedExtensions []string
	// Strategies overrides the loader chain.
	Strategies []parser.Strategy
	// Writers overrides the output writer chain.
	Writers []emit.Writer
	// Rules overrides the field standardization rules.
	Rules []standardize.Rule
	// Now overrides the clock used for journal timestamps.
	Now func() time.Time
}

// DefaultOptions returns default engine options.
func DefaultOptions() Options {
	return Options{
		SchemaPath:        "standard_format/standard_format.xlsx",
		OutputDir:         "output",
		DefaultSheetName:  "Sheet1",
		OutputSheetName:   "Questions",
		QuestionField:     "Question Text",
		OptionalFields:    DefaultOptionalFields,
		AllowedExtensions: parser.DefaultExtensions,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SchemaPath == "" {
		o.SchemaPath = d.SchemaPath
	}
	if o.OutputDir == "" {
		o.OutputDir = d.OutputDir
	}
	if o.DefaultSheetName == "" {
		o.DefaultSheetName = d.DefaultSheetName
	}
	if o.OutputSheetName == "" {
		o.OutputSheetName = d.OutputSheetName
	}
	if o.QuestionField == "" {
		o.QuestionField = d.QuestionField
	}
	if o.OptionalFields == nil {
		o.OptionalFields = d.OptionalFields
	}
	if len(o.AllowedExtensions) == 0 {
		o.AllowedExtensions = d.AllowedExtensions
	}
	if len(o.Strategies) == 0 {
		o.Strategies = parser.DefaultStrategies()
	}
	if len(o.Writers) == 0 {
		o.Writers = emit.DefaultWriters()
	}
	if o.Rules == nil {
		o.Rules = standardize.DefaultRules
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// isOptional reports whether field is on the optional list.
func (o Options) isOptional(field string) bool {
	for _, f := range o.OptionalFields {
		if f == field {
			return true
		}
	}
	return false
}
