package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

type fixtureSheet struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves the given sheets, in order, to a temporary xlsx file.
func writeWorkbook(t *testing.T, sheets ...fixtureSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if sh.name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", sh.name); err != nil {
					t.Fatalf("Failed to rename sheet: %v", err)
				}
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			t.Fatalf("Failed to add sheet: %v", err)
		}
		for r, row := range sh.rows {
			row := row
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				t.Fatalf("Failed to write row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestToCells(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellKind
	}{
		{"123", models.CellNumber},
		{"123.45", models.CellNumber},
		{"-100", models.CellNumber},
		{"TRUE", models.CellBool},
		{"2024-01-31", models.CellDate},
		{"hello", models.CellText},
		{"NaN", models.CellText},
		{"", models.CellAbsent},
	}

	inputs := make([]string, len(tests))
	for i, tt := range tests {
		inputs[i] = tt.input
	}
	cells := toCells(inputs)

	for i, tt := range tests {
		if cells[i].Kind != tt.expected {
			t.Errorf("toCells(%q) kind = %v, expected %v", tt.input, cells[i].Kind, tt.expected)
		}
		if cells[i].String() != tt.input {
			t.Errorf("toCells(%q) text = %q, expected the input", tt.input, cells[i].String())
		}
	}
}

func TestStreamStrategyReadsSheet(t *testing.T) {
	path := writeWorkbook(t, fixtureSheet{
		name: "Sheet1",
		rows: [][]interface{}{
			{"Header1", "Header2"},
			{100, 200.5},
			{"Text"},
		},
	})

	src, err := StreamStrategy{}.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	rows, err := src.ReadSheet("Sheet1")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0].String() != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0])
	}
	if rows[1][0].Kind != models.CellNumber || rows[1][0].Number != 100 {
		t.Errorf("Expected number 100, got %+v", rows[1][0])
	}
	if rows[1][1].Number != 200.5 {
		t.Errorf("Expected 200.5, got %+v", rows[1][1])
	}
	if len(rows[2]) != 1 || rows[2][0].String() != "Text" {
		t.Errorf("Expected single 'Text' cell, got %+v", rows[2])
	}
}

func TestRawStrategyMatchesStream(t *testing.T) {
	path := writeWorkbook(t, fixtureSheet{
		name: "Data",
		rows: [][]interface{}{
			{"Name", "Score"},
			{"alpha", 3},
			{"beta", 4},
		},
	})

	stream, err := StreamStrategy{}.Open(path)
	if err != nil {
		t.Fatalf("Open stream failed: %v", err)
	}
	defer stream.Close()
	raw, err := RawStrategy{}.Open(path)
	if err != nil {
		t.Fatalf("Open raw failed: %v", err)
	}
	defer raw.Close()

	a, err := stream.ReadSheet("Data")
	if err != nil {
		t.Fatalf("stream ReadSheet failed: %v", err)
	}
	b, err := raw.ReadSheet("Data")
	if err != nil {
		t.Fatalf("raw ReadSheet failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("row count differs: %d vs %d", len(a), len(b))
	}
	for r := range a {
		for c := range a[r] {
			if !a[r][c].Equal(b[r][c]) {
				t.Errorf("cell %d,%d differs: %v vs %v", r, c, a[r][c], b[r][c])
			}
		}
	}
}

func TestPadRow(t *testing.T) {
	row := []models.Cell{models.Text("a")}
	padded := padRow(row, 3)
	if len(padded) != 3 {
		t.Fatalf("Expected width 3, got %d", len(padded))
	}
	if !padded[2].IsAbsent() {
		t.Errorf("Expected absent padding, got %v", padded[2])
	}
	if isBlankRow(padded) {
		t.Errorf("Row with a value reported blank")
	}
	if !isBlankRow(make([]models.Cell, 2)) {
		t.Errorf("Absent row not reported blank")
	}
}

func TestStringCellsStayText(t *testing.T) {
	path := writeWorkbook(t, fixtureSheet{
		name: "Sheet1",
		rows: [][]interface{}{
			{"Option (A)", "Option (B)", "Code", "Flag", "Score"},
			{"3.10", "007", "12345678901234567890", "true", 7},
		},
	})

	for _, strategy := range DefaultStrategies() {
		t.Run(strategy.Name(), func(t *testing.T) {
			src, err := strategy.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer src.Close()

			rows, err := src.ReadSheet("Sheet1")
			if err != nil {
				t.Fatalf("ReadSheet failed: %v", err)
			}
			for c, want := range []string{"3.10", "007", "12345678901234567890", "true"} {
				cell := rows[1][c]
				if cell.Kind != models.CellText || cell.String() != want {
					t.Errorf("column %d = %+v, expected text %q", c, cell, want)
				}
			}
			if rows[1][4].Kind != models.CellNumber || rows[1][4].Number != 7 {
				t.Errorf("Expected number 7, got %+v", rows[1][4])
			}
		})
	}
}
