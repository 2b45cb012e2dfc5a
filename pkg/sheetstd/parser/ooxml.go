package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// OOXMLStrategy reads worksheet parts straight from the package archive,
// cell by cell. It is the last resort when excelize cannot open a file.
type OOXMLStrategy struct{}

// Name implements Strategy.
func (OOXMLStrategy) Name() string { return StrategyOOXML }

// Open implements Strategy.
func (OOXMLStrategy) Open(path string) (Source, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}

	workbookXML, err := readZipFile(&r.Reader, "xl/workbook.xml")
	if err != nil {
		r.Close()
		return nil, err
	}
	relsXML, err := readZipFile(&r.Reader, "xl/_rels/workbook.xml.rels")
	if err != nil {
		r.Close()
		return nil, err
	}

	sheets := parseWorkbookSheets(workbookXML)
	targets := parseWorkbookRels(relsXML)
	for i := range sheets {
		sheets[i].path = targets[sheets[i].rID]
	}

	return &ooxmlSource{r: r, sheets: sheets}, nil
}

// sheetRef is a worksheet entry of xl/workbook.xml.
type sheetRef struct {
	name string
	rID  string
	path string
}

type ooxmlSource struct {
	r       *zip.ReadCloser
	sheets  []sheetRef
	strings []string
	loaded  bool
}

func (s *ooxmlSource) SheetNames() []string {
	names := make([]string, len(s.sheets))
	for i, sh := range s.sheets {
		names[i] = sh.name
	}
	return names
}

func (s *ooxmlSource) ReadSheet(name string) ([][]models.Cell, error) {
	var ref *sheetRef
	for i := range s.sheets {
		if s.sheets[i].name == name {
			ref = &s.sheets[i]
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("sheet %s does not exist", name)
	}
	if ref.path == "" {
		return nil, fmt.Errorf("sheet %s has no worksheet part", name)
	}

	if err := s.loadSharedStrings(); err != nil {
		return nil, err
	}

	data, err := readZipFile(&s.r.Reader, ref.path)
	if err != nil {
		return nil, err
	}
	return parseWorksheet(data, s.strings)
}

func (s *ooxmlSource) Close() error { return s.r.Close() }

// loadSharedStrings reads the shared string table once. Workbooks without
// string cells have no table at all.
func (s *ooxmlSource) loadSharedStrings() error {
	if s.loaded {
		return nil
	}
	data, err := readZipFile(&s.r.Reader, "xl/sharedStrings.xml")
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if data != nil {
		table, err := parseSharedStrings(data)
		if err != nil {
			return fmt.Errorf("shared strings: %w", err)
		}
		s.strings = table
	}
	s.loaded = true
	return nil
}

// xlsxText is a string item: plain <t> or rich-text runs. Phonetic runs are ignored.
type xlsxText struct {
	T string `xml:"t"`
	R []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (x xlsxText) text() string {
	if len(x.R) == 0 {
		return x.T
	}
	var b strings.Builder
	b.WriteString(x.T)
	for _, r := range x.R {
		b.WriteString(r.T)
	}
	return b.String()
}

type xlsxCell struct {
	Ref  string    `xml:"r,attr"`
	Type string    `xml:"t,attr"`
	V    string    `xml:"v"`
	IS   *xlsxText `xml:"is"`
}

func parseSharedStrings(data []byte) ([]string, error) {
	var table []string
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return table, nil
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			var item xlsxText
			if err := decoder.DecodeElement(&item, &se); err != nil {
				return nil, err
			}
			table = append(table, item.text())
		}
	}
}

// parseWorksheet decodes sheetData into rows. Rows missing from the part
// are kept as empty rows so positions match the sheet.
func parseWorksheet(data []byte, shared []string) ([][]models.Cell, error) {
	var rows [][]models.Cell
	decoder := xml.NewDecoder(bytes.NewReader(data))
	rowNum, colNum := 0, 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "row":
			rowNum++
			if r := attrValue(se, "r"); r != "" {
				n, err := strconv.Atoi(r)
				if err != nil {
					return nil, fmt.Errorf("invalid row number %q", r)
				}
				rowNum = n
			}
			colNum = 0
			for len(rows) < rowNum {
				rows = append(rows, nil)
			}
		case "c":
			if rowNum == 0 {
				return nil, fmt.Errorf("cell outside of a row")
			}
			var cell xlsxCell
			if err := decoder.DecodeElement(&cell, &se); err != nil {
				return nil, err
			}
			colNum++
			if cell.Ref != "" {
				col, _, err := excelize.CellNameToCoordinates(cell.Ref)
				if err != nil {
					return nil, err
				}
				colNum = col
			}
			value, err := decodeCell(cell, shared)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell.Ref, err)
			}
			row := rows[rowNum-1]
			for len(row) < colNum {
				row = append(row, models.Absent())
			}
			row[colNum-1] = value
			rows[rowNum-1] = row
		}
	}

	return rows, nil
}

func decodeCell(c xlsxCell, shared []string) (models.Cell, error) {
	switch c.Type {
	case "s":
		if c.V == "" {
			return models.Absent(), nil
		}
		idx, err := strconv.Atoi(c.V)
		if err != nil || idx < 0 || idx >= len(shared) {
			return models.Cell{}, fmt.Errorf("invalid shared string index %q", c.V)
		}
		return models.Text(shared[idx]), nil
	case "inlineStr":
		if c.IS == nil {
			return models.Absent(), nil
		}
		return models.Text(c.IS.text()), nil
	case "b":
		return models.Bool(c.V == "1"), nil
	case "e":
		return models.Text(c.V), nil
	default:
		return models.ParseCell(c.V), nil
	}
}

// readZipFile returns the content of the named part.
// A missing part yields an error satisfying os.IsNotExist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// parseWorkbookSheets lists worksheet entries in workbook order.
func parseWorkbookSheets(data []byte) []sheetRef {
	var result []sheetRef
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var ref sheetRef
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					ref.name = attr.Value
				case "id":
					ref.rID = attr.Value
				}
			}
			if ref.name != "" && ref.rID != "" {
				result = append(result, ref)
			}
		}
	}

	return result
}

// parseWorkbookRels maps relationship ids to worksheet part paths.
func parseWorkbookRels(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rID, target := attrValue(se, "Id"), attrValue(se, "Target")
			if strings.Contains(strings.ToLower(target), "worksheet") {
				result[rID] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	return baseDir + "/" + target
}
