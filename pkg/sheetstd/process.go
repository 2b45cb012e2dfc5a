package sheetstd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/emit"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/match"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/parser"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/standardize"
)

// Process standardizes the working sheet of path against the schema and
// writes one output document per group, plus the journal document.
//
// Unmatched columns, unrecognized values, missing split columns, empty split
// groups and failed writes are returned as soft errors. Process fails only
// when the schema, the file or the working sheet is unusable.
func (e *Engine) Process(path string, req models.ProcessRequest) (*models.ProcessResult, error) {
	j := e.startRun()

	schema, err := e.SchemaFields()
	if err != nil {
		j.Error(journal.ActionError, "%v", err)
		return nil, err
	}

	_, sheet, _, err := e.openSheet(j, path, req.Sheet)
	if err != nil {
		return nil, err
	}
	source := parser.BuildTable(sheet, j)
	j.Info(journal.ActionLoaded, "Loaded file %s with %d rows and %d columns from sheet '%s' (%s)",
		filepath.Base(path), source.Len(), len(source.Columns), sheet.Name, sheet.Strategy)

	soft := &models.SoftErrors{}
	result := e.standardize(j, source, schema, req, soft)
	canonical := emit.Build(result, schema)

	groups, split := e.partition(j, source, canonical, req.SplitColumn, soft)

	outDir := filepath.Join(e.opts.OutputDir, emit.Stem(path))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		j.Error(journal.ActionError, "Cannot create output folder %s: %v", outDir, err)
		return nil, fmt.Errorf("create output folder: %w", err)
	}

	emitter := &emit.Emitter{Writers: e.opts.Writers, SheetName: e.opts.OutputSheetName, Journal: j}
	used := make(map[string]bool)
	res := &models.ProcessResult{OutputGroups: []models.OutputGroup{}}
	for _, g := range groups {
		name := emit.ProcessedFileName(path)
		if split {
			name = emit.GroupFileName(g.Name, used)
		}
		outPath := filepath.Join(outDir, name)

		writer, err := emitter.Emit(outPath, canonical.Columns, g.Rows)
		if err != nil {
			soft.Add(fmt.Sprintf("Failed to save file for %s: %v", g.Name, err), models.NoRowRef)
			j.Error(journal.ActionError, "Failed to save file for %s: %v", g.Name, err)
			continue
		}

		rows := len(g.Rows)
		if g.Placeholder {
			rows = 0
		}
		res.OutputGroups = append(res.OutputGroups, models.OutputGroup{
			Name:        g.Name,
			Path:        outPath,
			RowCount:    rows,
			Placeholder: g.Placeholder,
			Writer:      writer,
		})
		j.Info(journal.ActionSaved, "Saved %s with %d rows", outPath, rows)
	}

	journalPath, err := j.Save(outDir, filepath.Base(path), soft)
	if err != nil {
		soft.Add(fmt.Sprintf("Failed to save journal: %v", err), models.NoRowRef)
		j.Error(journal.ActionError, "Failed to save journal: %v", err)
	}

	res.JournalPath = journalPath
	res.Journal = j.Entries()
	res.Errors = soft.Messages()
	res.ErrorRowRefs = soft.RowRefs()
	return res, nil
}

// standardize fills every schema field from its custom value or matched
// source column and applies the field rules.
func (e *Engine) standardize(j *journal.Journal, source *models.Table, schema []string, req models.ProcessRequest, soft *models.SoftErrors) *models.Table {
	result := &models.Table{Columns: schema, Rows: make([][]models.Cell, source.Len())}
	for r := range result.Rows {
		result.Rows[r] = make([]models.Cell, len(schema))
	}

	questions := e.questionTexts(source, req.Mapping)
	mapped := 0

	for f, field := range schema {
		if v := req.CustomValues[field]; v != "" {
			for r := range result.Rows {
				result.Rows[r][f] = models.Text(v)
			}
			j.Info(journal.ActionCustomValue, "Using custom value for '%s': '%s'", field, v)
			continue
		}

		requested := req.Mapping[field]
		m := match.MatchColumn(field, source.Columns, requested)
		if !m.Matched() {
			if requested != "" {
				j.Warn(journal.ActionColumnMatched, "No match found for column '%s'. Available columns: %v", requested, source.Columns)
			}
			if !e.opts.isOptional(field) {
				soft.Add(fmt.Sprintf("Required column '%s' not mapped or not found", field), models.NoRowRef)
			}
			continue
		}
		mapped++
		if m.Method == match.MethodExact {
			j.Info(journal.ActionColumnMatched, "Using exact column match: '%s'", m.Column)
		} else {
			j.Info(journal.ActionColumnMatched, "Using %s column match: '%s' -> '%s' (score: %.2f)", m.Method, requested, m.Column, m.Score)
		}

		col := source.ColumnIndex(m.Column)
		rule, hasRule := standardize.Lookup(e.opts.Rules, field)
		for r, row := range source.Rows {
			raw := row[col]
			if !hasRule {
				result.Rows[r][f] = raw
				continue
			}
			value, flagged := rule.Apply(raw)
			result.Rows[r][f] = value
			if flagged {
				soft.Add(rule.Error(raw), fmt.Sprintf("Row %d: %s", source.SheetRow(r), questions[r]))
			}
		}
	}

	j.Info(journal.ActionMapping, "Applied mapping configuration: %d of %d fields mapped", mapped, len(schema))
	return result
}

// questionTexts returns the question text of every source row, taken from
// the column mapped to the question field. Rows are blank when unmapped.
func (e *Engine) questionTexts(source *models.Table, mapping models.MappingConfig) []string {
	texts := make([]string, source.Len())
	col := resolveColumn(source.Columns, mapping[e.opts.QuestionField])
	if col < 0 {
		return texts
	}
	for r, row := range source.Rows {
		texts[r] = row[col].String()
	}
	return texts
}

// partition splits the canonical table by the source split column.
// It reports whether the result is split.
func (e *Engine) partition(j *journal.Journal, source, canonical *models.Table, splitColumn string, soft *models.SoftErrors) ([]emit.Group, bool) {
	if splitColumn == "" {
		return emit.Partition(canonical, nil), false
	}

	col := resolveColumn(source.Columns, splitColumn)
	if col < 0 {
		soft.Add(fmt.Sprintf("Split column '%s' not found", splitColumn), models.NoRowRef)
		j.Error(journal.ActionError, "Split column '%s' not found", splitColumn)
		return emit.Partition(canonical, nil), false
	}

	groups := emit.Partition(canonical, source.Column(col))
	if len(groups) == 0 {
		j.Warn(journal.ActionSplit, "Split column '%s' has no values, writing unsplit output", source.Columns[col])
		return emit.Partition(canonical, nil), false
	}
	for _, g := range groups {
		if g.Placeholder {
			soft.Add(fmt.Sprintf("No rows matched split value '%s'", g.Name), models.NoRowRef)
			j.Warn(journal.ActionSplit, "No rows matched split value '%s', writing a placeholder row", g.Name)
		}
	}
	j.Info(journal.ActionSplit, "Split data by '%s' into %d groups", source.Columns[col], len(groups))
	return groups, true
}

// resolveColumn finds name among columns exactly, then case-insensitively.
func resolveColumn(columns []string, name string) int {
	if name == "" {
		return -1
	}
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	for i, c := range columns {
		if match.EqualFold(c, name) {
			return i
		}
	}
	return -1
}
