package parser

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// toCells decodes one row of cell text.
// Empty strings become absent cells.
func toCells(values []string) []models.Cell {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		cells[i] = models.ParseCell(v)
	}
	return cells
}

// isBlankRow reports whether every cell of the row is absent.
func isBlankRow(row []models.Cell) bool {
	for _, c := range row {
		if !c.IsAbsent() {
			return false
		}
	}
	return true
}

// padRow returns row resized to exactly width cells.
func padRow(row []models.Cell, width int) []models.Cell {
	out := make([]models.Cell, width)
	copy(out, row)
	return out
}
