package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/output"
)

// maxPrintedErrors bounds the soft errors printed after a process run.
const maxPrintedErrors = 10

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)

	h := make([]any, len(headers))
	for i, v := range headers {
		h[i] = v
	}
	table.Header(h...)

	for _, row := range rows {
		r := make([]any, len(row))
		for i, v := range row {
			r[i] = v
		}
		if err := table.Append(r...); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderJSON(w io.Writer, v interface{}, pretty bool) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderSchema(w io.Writer, fields []string) error {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{strconv.Itoa(i + 1), f}
	}
	return renderTable(w, []string{"#", "Field"}, rows)
}

func renderAnalysis(w io.Writer, a *models.Analysis) error {
	fmt.Fprintf(w, "File: %s\n", a.BookName)
	fmt.Fprintf(w, "Sheet: %s (%s), %d rows, %d columns\n\n", a.SelectedSheet, a.SelectionMethod, a.RowCount, a.ColCount)

	sheets := make([][]string, 0, len(a.SheetNames))
	for _, name := range a.SheetNames {
		s := a.PerSheetSummary[name]
		sheets = append(sheets, []string{name, strconv.Itoa(s.Rows), strconv.Itoa(s.Columns), s.Strategy, s.Error})
	}
	if err := renderTable(w, []string{"Sheet", "Rows", "Columns", "Reader", "Error"}, sheets); err != nil {
		return err
	}
	fmt.Fprintln(w)

	columns := make([][]string, len(a.Columns))
	for i, c := range a.Columns {
		samples := make([]string, len(c.SampleValues))
		for k, s := range c.SampleValues {
			samples[k] = s.String()
		}
		columns[i] = []string{c.Name, c.Type, strings.Join(samples, " | ")}
	}
	return renderTable(w, []string{"Column", "Type", "Samples"}, columns)
}

func renderMapping(w io.Writer, schema []string, mapping models.MappingConfig) error {
	rows := make([][]string, 0, len(schema))
	for _, f := range schema {
		rows = append(rows, []string{f, mapping[f]})
	}
	return renderTable(w, []string{"Field", "Column"}, rows)
}

func renderResult(w io.Writer, res *models.ProcessResult) error {
	groups := make([][]string, len(res.OutputGroups))
	for i, g := range res.OutputGroups {
		rows := strconv.Itoa(g.RowCount)
		if g.Placeholder {
			rows = "placeholder"
		}
		groups[i] = []string{g.Name, rows, g.Writer, g.Path}
	}
	if err := renderTable(w, []string{"Group", "Rows", "Writer", "File"}, groups); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nJournal: %s\n", res.JournalPath)

	if len(res.Errors) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\n%d issue(s):\n", len(res.Errors))
	for i, msg := range res.Errors {
		if i == maxPrintedErrors {
			fmt.Fprintf(w, "  ... and %d more\n", len(res.Errors)-maxPrintedErrors)
			break
		}
		if ref := res.ErrorRowRefs[i]; ref != models.NoRowRef {
			fmt.Fprintf(w, "  - %s (%s)\n", msg, ref)
		} else {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
	return nil
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
