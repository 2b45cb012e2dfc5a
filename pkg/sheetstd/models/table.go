package models

// Table is a header-resolved sheet: unique column labels plus data rows.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
	// SheetRows holds the 1-based sheet row of each data row, when known.
	SheetRows []int
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// SheetRow returns the 1-based sheet row of data row r. Tables without
// recorded positions assume a header on row 1 and no gaps.
func (t *Table) SheetRow(r int) int {
	if r < len(t.SheetRows) {
		return t.SheetRows[r]
	}
	return r + 2
}

// ColumnIndex returns the position of the column with the exact label, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the cells of the column at index i.
func (t *Table) Column(i int) []Cell {
	cells := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			cells[r] = row[i]
		}
	}
	return cells
}
