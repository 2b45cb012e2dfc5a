// Package models defines data structures shared by the standardization engine.
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CellKind tags the variant held by a Cell.
type CellKind int

const (
	// CellAbsent is an empty or missing cell.
	CellAbsent CellKind = iota
	// CellText holds free text.
	CellText
	// CellNumber holds a numeric value.
	CellNumber
	// CellBool holds a boolean value.
	CellBool
	// CellDate holds a date or date-time value.
	CellDate
)

// String returns the kind name used in analysis reports.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellBool:
		return "boolean"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// Cell is a single spreadsheet value.
type Cell struct {
	// Kind selects which of the value fields is meaningful.
	Kind CellKind
	// Raw is the text the value was decoded from, when known.
	Raw string
	// Number is set for CellNumber.
	Number float64
	// Bool is set for CellBool.
	Bool bool
	// Time is set for CellDate.
	Time time.Time
}

// Absent returns an empty cell.
func Absent() Cell { return Cell{} }

// Text returns a text cell. An empty string yields an absent cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Raw: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// IsAbsent reports whether the cell carries no value.
func (c Cell) IsAbsent() bool { return c.Kind == CellAbsent }

// String returns the text projection of the cell.
// Decoded cells keep the exact text they were read from.
func (c Cell) String() string {
	if c.Kind == CellAbsent {
		return ""
	}
	if c.Raw != "" {
		return c.Raw
	}
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case CellDate:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 {
			return c.Time.Format("2006-01-02")
		}
		return c.Time.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Equal reports whether two cells hold the same variant and text projection.
func (c Cell) Equal(o Cell) bool {
	return c.Kind == o.Kind && c.String() == o.String()
}

// Value returns the cell as a plain Go value for writers.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case CellText:
		return c.Raw
	case CellNumber:
		return c.Number
	case CellBool:
		return c.Bool
	case CellDate:
		return c.Time
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as its plain value.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Kind == CellDate {
		return json.Marshal(c.String())
	}
	return json.Marshal(c.Value())
}

// UnmarshalJSON decodes a plain JSON value. Strings are kept as text.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*c = Absent()
	case string:
		*c = Text(x)
	case float64:
		*c = Number(x)
	case bool:
		*c = Bool(x)
	default:
		return fmt.Errorf("cell: unsupported JSON value %s", data)
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01-02-06",
}

// ParseCell decodes a cell from its textual form.
// Integers and decimals become numbers, TRUE/FALSE become booleans,
// ISO-like dates become dates and everything else stays text.
func ParseCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Cell{Kind: CellNumber, Raw: s, Number: float64(i)}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Cell{Kind: CellNumber, Raw: s, Number: f}
	}
	switch strings.ToUpper(s) {
	case "TRUE":
		return Cell{Kind: CellBool, Raw: s, Bool: true}
	case "FALSE":
		return Cell{Kind: CellBool, Raw: s, Bool: false}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Cell{Kind: CellDate, Raw: s, Time: t}
		}
	}
	return Cell{Kind: CellText, Raw: s}
}
