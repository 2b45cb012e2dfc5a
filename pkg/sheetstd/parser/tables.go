package parser

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// BuildTable resolves a sheet into a header-labelled table.
//
// Leading blank rows are skipped so the first non-blank row is the header.
// Blank data rows are dropped and every remaining row is padded to the
// header width, keeping its sheet row number. A failed or empty sheet
// yields an empty table.
func BuildTable(sheet *models.Sheet, j *journal.Journal) *models.Table {
	table := &models.Table{}
	if sheet == nil || sheet.Failed() {
		return table
	}

	minRow, maxRow, width := findDataBounds(sheet.Rows)
	if minRow < 0 {
		return table
	}

	header := padRow(sheet.Rows[minRow], width)
	table.Columns = Canonicalize(header, j)

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := sheet.Rows[rowIdx]
		if isBlankRow(row) {
			continue
		}
		table.Rows = append(table.Rows, padRow(row, width))
		table.SheetRows = append(table.SheetRows, rowIdx+1)
	}
	return table
}

// findDataBounds finds the first and last non-blank rows and the width
// of the widest row up to its last non-absent cell.
func findDataBounds(rows [][]models.Cell) (minRow, maxRow, width int) {
	minRow, maxRow = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsAbsent() {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
	}

	return
}
