package sheetstd

import (
	"github.com/rs/zerolog"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/errors"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/match"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/parser"
)

// Engine runs analysis and standardization against one schema.
//
// Each Analyze or Process call starts a fresh journal. An Engine is not safe
// for concurrent use; create one engine per concurrent caller.
type Engine struct {
	opts   Options
	log    zerolog.Logger
	schema []string
}

// New creates an engine. Zero-valued options fall back to DefaultOptions.
func New(opts Options, logger zerolog.Logger) *Engine {
	opts = opts.withDefaults()
	return &Engine{opts: opts, log: logger}
}

// Options returns the effective options.
func (e *Engine) Options() Options { return e.opts }

func (e *Engine) startRun() *journal.Journal {
	return journal.NewWithClock(e.log, e.opts.Now)
}

func (e *Engine) loader(j *journal.Journal) *parser.Loader {
	return &parser.Loader{
		Strategies: e.opts.Strategies,
		Extensions: e.opts.AllowedExtensions,
		Journal:    j,
	}
}

// SchemaFields returns the canonical field order read from the schema
// template's first sheet header. The schema is read once per engine.
func (e *Engine) SchemaFields() ([]string, error) {
	if e.schema != nil {
		return append([]string{}, e.schema...), nil
	}

	wb, err := e.loader(nil).Load(e.opts.SchemaPath)
	if err != nil {
		return nil, &errors.SchemaUnavailableError{Path: e.opts.SchemaPath, Err: err}
	}
	first := &wb.Sheets[0]
	if first.Failed() {
		return nil, &errors.SchemaUnavailableError{Path: e.opts.SchemaPath, Err: first.Err}
	}
	table := parser.BuildTable(first, nil)
	if len(table.Columns) == 0 {
		return nil, &errors.SchemaUnavailableError{
			Path: e.opts.SchemaPath,
			Err:  errors.NewLoadError(e.opts.SchemaPath, "template has no header row", nil),
		}
	}

	e.schema = table.Columns
	return append([]string{}, e.schema...), nil
}

// openSheet loads the workbook and resolves the working sheet.
func (e *Engine) openSheet(j *journal.Journal, path, hint string) (*models.Workbook, *models.Sheet, match.Selection, error) {
	wb, err := e.loader(j).Load(path)
	if err != nil {
		j.Error(journal.ActionError, "%v", err)
		return nil, nil, match.Selection{}, err
	}

	candidates := make([]match.SheetCandidate, len(wb.Sheets))
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		table := parser.BuildTable(sheet, nil)
		candidates[i] = match.SheetCandidate{
			Name:    sheet.Name,
			Columns: len(table.Columns),
			Rows:    table.Len(),
			Err:     sheet.Err,
		}
	}

	sel, err := match.SelectSheet(candidates, hint, e.opts.DefaultSheetName)
	if err != nil {
		j.Error(journal.ActionError, "%v", err)
		return nil, nil, match.Selection{}, err
	}
	if sel.Method == match.MethodFuzzy {
		j.Warn(journal.ActionSheetSelected, "Using fuzzy sheet match: '%s' -> '%s' (score: %.2f)", hint, sel.Name, sel.Score)
	} else {
		j.Info(journal.ActionSheetSelected, "Selected sheet '%s' (%s)", sel.Name, sel.Method)
	}

	sheet, _ := wb.Sheet(sel.Name)
	return wb, sheet, sel, nil
}
