package parser

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// corruptPart rewrites the archive at path with the named part replaced.
func corruptPart(t *testing.T, path, part string, content []byte) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()

	out := filepath.Join(t.TempDir(), "corrupt.xlsx")
	f, err := os.Create(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, zf := range r.File {
		dst, err := w.Create(zf.Name)
		if err != nil {
			t.Fatal(err)
		}
		if zf.Name == part {
			if _, err := dst.Write(content); err != nil {
				t.Fatal(err)
			}
			continue
		}
		src, err := zf.Open()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			t.Fatal(err)
		}
		src.Close()
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestOOXMLStrategyMatchesStream(t *testing.T) {
	path := writeWorkbook(t,
		fixtureSheet{name: "Questions", rows: [][]interface{}{
			{"Question Text", "Score", "Active"},
			{"What is 2+2?", 1, true},
			{"Name a prime", 2.5, false},
		}},
		fixtureSheet{name: "Other", rows: [][]interface{}{{"X"}}},
	)

	src, err := OOXMLStrategy{}.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	names := src.SheetNames()
	if len(names) != 2 || names[0] != "Questions" || names[1] != "Other" {
		t.Fatalf("SheetNames = %v", names)
	}

	rows, err := src.ReadSheet("Questions")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[1][0].String() != "What is 2+2?" {
		t.Errorf("Expected question text, got %v", rows[1][0])
	}
	if rows[2][1].Kind != models.CellNumber || rows[2][1].Number != 2.5 {
		t.Errorf("Expected 2.5, got %+v", rows[2][1])
	}
	if rows[1][2].Kind != models.CellBool || !rows[1][2].Bool {
		t.Errorf("Expected TRUE, got %+v", rows[1][2])
	}
}

func TestOOXMLStrategyIsolatesCorruptSheet(t *testing.T) {
	path := writeWorkbook(t,
		fixtureSheet{name: "Valid", rows: [][]interface{}{{"A"}, {"1"}}},
		fixtureSheet{name: "Broken", rows: [][]interface{}{{"B"}, {"2"}}},
	)

	src, err := OOXMLStrategy{}.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	part := src.(*ooxmlSource).sheets[1].path
	src.Close()
	if part == "" {
		t.Fatal("Broken sheet part not resolved")
	}

	corrupt := corruptPart(t, path, part, []byte("<worksheet><sheetData><row r=\"1\"><c r=\"A1\"><v>1</v></row>"))

	loader := &Loader{Strategies: []Strategy{OOXMLStrategy{}}}
	wb, err := loader.Load(corrupt)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	valid, _ := wb.Sheet("Valid")
	broken, _ := wb.Sheet("Broken")
	if valid.Failed() || valid.DataRowCount() != 1 {
		t.Errorf("Valid sheet should load, got %+v", valid)
	}
	if !broken.Failed() {
		t.Errorf("Broken sheet should be a placeholder with an error")
	}
}

func TestParseWorksheet(t *testing.T) {
	data := []byte(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<dimension ref="A1:C4"/>
<sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="C1" t="inlineStr"><is><r><t>Rich </t></r><r><t>text</t></r></is></c></row>
<row r="3"><c r="B3" t="b"><v>0</v></c></row>
<row r="4"><c t="str"><v>formula</v></c><c><v>42</v></c></row>
</sheetData>
</worksheet>`)

	rows, err := parseWorksheet(data, []string{"Shared"})
	if err != nil {
		t.Fatalf("parseWorksheet failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows including the gap, got %d", len(rows))
	}
	if rows[0][0].String() != "Shared" || !rows[0][1].IsAbsent() || rows[0][2].String() != "Rich text" {
		t.Errorf("Row 1 = %+v", rows[0])
	}
	if len(rows[1]) != 0 {
		t.Errorf("Gap row should be empty, got %+v", rows[1])
	}
	if rows[2][1].Kind != models.CellBool || rows[2][1].Bool {
		t.Errorf("Expected FALSE in B3, got %+v", rows[2][1])
	}
	if rows[3][0].String() != "formula" || rows[3][1].Number != 42 {
		t.Errorf("Row 4 = %+v", rows[3])
	}
}

func TestParseWorksheetErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad shared index", `<worksheet><sheetData><row r="1"><c r="A1" t="s"><v>7</v></c></row></sheetData></worksheet>`},
		{"bad reference", `<worksheet><sheetData><row r="1"><c r="1A"><v>1</v></c></row></sheetData></worksheet>`},
		{"bad row number", `<worksheet><sheetData><row r="x"></row></sheetData></worksheet>`},
		{"truncated", `<worksheet><sheetData><row r="1"><c r="A1"><v>1</v>`},
	}

	for _, tt := range tests {
		if _, err := parseWorksheet([]byte(tt.data), nil); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{"../worksheets/sheet3.xml", "xl/worksheets/sheet3.xml"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, "xl"); got != tt.expected {
			t.Errorf("resolveRelativePath(%q) = %q, expected %q", tt.target, got, tt.expected)
		}
	}
}
