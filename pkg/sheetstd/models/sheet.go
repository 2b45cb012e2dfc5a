package models

// Sheet represents one worksheet as decoded by a loader strategy.
// The first row is the header row.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Rows contains every decoded row, header first.
	Rows [][]Cell `json:"-"`
	// Strategy names the loader strategy that decoded the sheet.
	Strategy string `json:"strategy,omitempty"`
	// Err is set when no strategy could decode the sheet.
	Err error `json:"-"`
}

// Failed reports whether the sheet is a load-error placeholder.
func (s *Sheet) Failed() bool { return s.Err != nil }

// ColumnCount returns the width of the widest row.
func (s *Sheet) ColumnCount() int {
	width := 0
	for _, row := range s.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// DataRowCount returns the number of rows below the header.
func (s *Sheet) DataRowCount() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows) - 1
}
