package emit

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/errors"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// Writer serializes one output document.
type Writer interface {
	Name() string
	Write(path, sheet string, columns []string, rows [][]models.Cell) error
}

// Writer names.
const (
	WriterStyled = "styled"
	WriterPlain  = "plain"
)

// DefaultWriters returns the formatted writer followed by the plain fallback.
func DefaultWriters() []Writer {
	return []Writer{
		&StyledWriter{Widths: DefaultWidths},
		PlainWriter{},
	}
}

// ColumnWidth sets the width of the columns Start through End.
type ColumnWidth struct {
	Start string
	End   string
	Width float64
}

// DefaultWidths are the column widths of the question layout.
var DefaultWidths = []ColumnWidth{
	{"A", "A", 20},
	{"B", "B", 20},
	{"C", "C", 80},
	{"D", "G", 50},
	{"H", "H", 20},
	{"I", "I", 20},
	{"J", "J", 80},
	{"K", "K", 15},
	{"L", "L", 40},
	{"M", "Z", 30},
}

// StyledWriter writes a bold, wrapped, bordered header and fixed column widths.
type StyledWriter struct {
	Widths []ColumnWidth
}

// Name implements Writer.
func (*StyledWriter) Name() string { return WriterStyled }

// Write implements Writer.
func (w *StyledWriter) Write(path, sheet string, columns []string, rows [][]models.Cell) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	for _, cw := range w.Widths {
		if err := f.SetColWidth(sheet, cw.Start, cw.End, cw.Width); err != nil {
			return fmt.Errorf("set width %s:%s: %w", cw.Start, cw.End, err)
		}
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	if len(columns) > 0 {
		style, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
			Border: []excelize.Border{
				{Type: "left", Color: "000000", Style: 1},
				{Type: "top", Color: "000000", Style: 1},
				{Type: "right", Color: "000000", Style: 1},
				{Type: "bottom", Color: "000000", Style: 1},
			},
		})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return err
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rowValues(row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// PlainWriter streams rows without any formatting.
type PlainWriter struct{}

// Name implements Writer.
func (PlainWriter) Name() string { return WriterPlain }

// Write implements Writer.
func (PlainWriter) Write(path, sheet string, columns []string, rows [][]models.Cell) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, rowValues(row)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func renameDefaultSheet(f *excelize.File, sheet string) error {
	if sheet == "" || sheet == "Sheet1" {
		return nil
	}
	return f.SetSheetName("Sheet1", sheet)
}

func rowValues(row []models.Cell) []interface{} {
	values := make([]interface{}, len(row))
	for i, c := range row {
		switch c.Kind {
		case models.CellAbsent:
			values[i] = nil
		case models.CellDate:
			values[i] = c.String()
		default:
			values[i] = c.Value()
		}
	}
	return values
}

// Emitter writes groups through an ordered chain of writers.
type Emitter struct {
	Writers   []Writer
	SheetName string
	Journal   *journal.Journal
}

// Emit writes one document to path. Writers are tried in order and a failed
// attempt's partial file is removed. It returns the name of the writer that
// succeeded, or the joined errors of every attempt.
func (e *Emitter) Emit(path string, columns []string, rows [][]models.Cell) (string, error) {
	writers := e.Writers
	if len(writers) == 0 {
		writers = DefaultWriters()
	}

	var errs []error
	for _, w := range writers {
		err := w.Write(path, e.SheetName, columns, rows)
		if err == nil {
			return w.Name(), nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", w.Name(), err))
		e.Journal.Warn(journal.ActionSaved, "Writer %s failed for %s: %v", w.Name(), path, err)
		os.Remove(path)
	}
	return "", errors.Join(errs...)
}
