package sheetstd

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/parser"
)

const sampleSize = 3

// Analyze reports the structure of a workbook and of its working sheet.
//
// Sheets that fail to load are listed with their error in the per-sheet
// summary. Analyze fails only when the file cannot be read or the working
// sheet cannot be resolved.
func (e *Engine) Analyze(path, sheetHint string) (*models.Analysis, error) {
	j := e.startRun()
	j.Info(journal.ActionAnalysis, "Analyzing file %s", path)

	wb, sheet, sel, err := e.openSheet(j, path, sheetHint)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]models.SheetSummary, len(wb.Sheets))
	for i := range wb.Sheets {
		s := &wb.Sheets[i]
		table := parser.BuildTable(s, nil)
		summary := models.SheetSummary{
			Columns:  len(table.Columns),
			Rows:     table.Len(),
			Strategy: s.Strategy,
		}
		if s.Failed() {
			summary.Error = s.Err.Error()
		}
		summaries[s.Name] = summary
	}

	table := parser.BuildTable(sheet, j)
	columns := make([]models.ColumnInfo, len(table.Columns))
	for i, name := range table.Columns {
		columns[i] = describeColumn(name, table.Column(i))
	}

	j.Info(journal.ActionAnalysis, "Sheet '%s' has %d rows and %d columns", sheet.Name, table.Len(), len(table.Columns))

	return &models.Analysis{
		BookName:        wb.BookName,
		Columns:         columns,
		RowCount:        table.Len(),
		ColCount:        len(table.Columns),
		SheetNames:      wb.SheetNames(),
		SelectedSheet:   sheet.Name,
		SelectionMethod: sel.Method,
		PerSheetSummary: summaries,
	}, nil
}

// describeColumn names the column's value kind and keeps a few samples.
// A column whose values have different kinds is "mixed".
func describeColumn(name string, cells []models.Cell) models.ColumnInfo {
	info := models.ColumnInfo{Name: name, Type: models.CellAbsent.String(), SampleValues: []models.Cell{}}

	kind := models.CellAbsent
	for _, c := range cells {
		if c.IsAbsent() {
			continue
		}
		if len(info.SampleValues) < sampleSize {
			info.SampleValues = append(info.SampleValues, c)
		}
		switch {
		case kind == models.CellAbsent:
			kind = c.Kind
			info.Type = kind.String()
		case kind != c.Kind:
			info.Type = "mixed"
		}
	}
	return info
}
