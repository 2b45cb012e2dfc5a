package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// StreamStrategy reads sheets with the excelize row iterator and decodes
// the formatted cell text.
type StreamStrategy struct{}

// Name implements Strategy.
func (StreamStrategy) Name() string { return StrategyStream }

// Open implements Strategy.
func (StreamStrategy) Open(path string) (Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &streamSource{f: f}, nil
}

type streamSource struct {
	f *excelize.File
}

func (s *streamSource) SheetNames() []string { return s.f.GetSheetList() }

func (s *streamSource) ReadSheet(name string) ([][]models.Cell, error) {
	rows, err := s.f.Rows(name)
	if err != nil {
		return nil, err
	}

	var result [][]models.Cell
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return nil, err
		}
		result = append(result, toCells(cols))
	}
	if err := rows.Error(); err != nil {
		rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	if err := keepStringCells(s.f, name, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *streamSource) Close() error { return s.f.Close() }

// RawStrategy reads whole sheets with raw (unformatted) cell values.
// It tolerates number formats the stream strategy cannot render.
type RawStrategy struct{}

// Name implements Strategy.
func (RawStrategy) Name() string { return StrategyRaw }

// Open implements Strategy.
func (RawStrategy) Open(path string) (Source, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return &rawSource{f: f}, nil
}

type rawSource struct {
	f *excelize.File
}

func (s *rawSource) SheetNames() []string { return s.f.GetSheetList() }

func (s *rawSource) ReadSheet(name string) ([][]models.Cell, error) {
	rows, err := s.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	result := make([][]models.Cell, len(rows))
	for i, row := range rows {
		result[i] = toCells(row)
	}
	if err := keepStringCells(s.f, name, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *rawSource) Close() error { return s.f.Close() }

// keepStringCells turns cells stored as strings back into text when their
// content decoded as a number, boolean or date. Row i of rows is sheet row i+1.
func keepStringCells(f *excelize.File, sheet string, rows [][]models.Cell) error {
	for r, row := range rows {
		for c, cell := range row {
			if cell.IsAbsent() || cell.Kind == models.CellText {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			typ, err := f.GetCellType(sheet, ref)
			if err != nil {
				return err
			}
			if typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString {
				row[c] = models.Text(cell.Raw)
			}
		}
	}
	return nil
}
