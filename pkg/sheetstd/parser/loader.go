package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/errors"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// DefaultExtensions are the accepted spreadsheet file extensions.
var DefaultExtensions = []string{".xlsx", ".xls"}

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Loader opens spreadsheet files through an ordered chain of strategies.
//
// The sheet list comes from the first strategy that can open the file. Each
// sheet is then decoded by the first strategy that succeeds on it; a sheet no
// strategy can decode is kept as a placeholder carrying the joined errors.
type Loader struct {
	Strategies []Strategy
	Extensions []string
	Journal    *journal.Journal
}

// NewLoader creates a loader with the default chain.
func NewLoader(j *journal.Journal) *Loader {
	return &Loader{
		Strategies: DefaultStrategies(),
		Extensions: DefaultExtensions,
		Journal:    j,
	}
}

type openedSource struct {
	strategy Strategy
	source   Source
	err      error
}

// Load reads every sheet of the file at path.
func (l *Loader) Load(path string) (*models.Workbook, error) {
	if err := l.checkFile(path); err != nil {
		return nil, err
	}

	strategies := l.Strategies
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	opened := make([]*openedSource, len(strategies))
	defer func() {
		for _, o := range opened {
			if o != nil && o.source != nil {
				o.source.Close()
			}
		}
	}()
	open := func(i int) *openedSource {
		if opened[i] == nil {
			src, err := strategies[i].Open(path)
			opened[i] = &openedSource{strategy: strategies[i], source: src, err: err}
			if err != nil {
				l.Journal.Warn(journal.ActionSheetLoad, "Strategy %s could not open file: %v",
					strategies[i].Name(), err)
			}
		}
		return opened[i]
	}

	var lister *openedSource
	var openErrs []error
	for i := range strategies {
		o := open(i)
		if o.err == nil {
			lister = o
			break
		}
		openErrs = append(openErrs, fmt.Errorf("%s: %w", o.strategy.Name(), o.err))
	}
	if lister == nil {
		return nil, errors.NewLoadError(path, "no strategy could read the file", errors.Join(openErrs...))
	}

	names := lister.source.SheetNames()
	if len(names) == 0 {
		return nil, errors.NewLoadError(path, "workbook contains no sheets", nil)
	}

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Strategy: lister.strategy.Name(),
		Sheets:   make([]models.Sheet, 0, len(names)),
	}
	for _, name := range names {
		sheet := models.Sheet{Name: name}
		var readErrs []error
		for i := range strategies {
			o := open(i)
			if o.err != nil {
				continue
			}
			rows, err := o.source.ReadSheet(name)
			if err != nil {
				readErrs = append(readErrs, errors.NewReadError(name, o.strategy.Name(), err))
				l.Journal.Warn(journal.ActionSheetLoad, "Strategy %s failed for sheet '%s': %v",
					o.strategy.Name(), name, err)
				continue
			}
			sheet.Rows = rows
			sheet.Strategy = o.strategy.Name()
			break
		}
		if sheet.Strategy == "" {
			if len(readErrs) == 0 {
				readErrs = append(readErrs, fmt.Errorf("no strategy available for sheet %q", name))
			}
			sheet.Err = errors.Join(readErrs...)
			l.Journal.Error(journal.ActionError, "Error reading sheet '%s': %v", name, sheet.Err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// checkFile rejects paths that cannot hold a supported workbook.
func (l *Loader) checkFile(path string) error {
	exts := l.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	allowed := false
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.NewLoadError(path, fmt.Sprintf("unsupported file type %q (allowed: %s)",
			ext, strings.Join(exts, ", ")), nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.NewLoadError(path, "", err)
	}
	defer f.Close()

	head := make([]byte, len(oleMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return errors.NewLoadError(path, "", err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return nil
	case bytes.Equal(head, oleMagic):
		return errors.NewLoadError(path, "legacy binary workbook format is not supported, save it as .xlsx", nil)
	default:
		return errors.NewLoadError(path, "not a spreadsheet document", nil)
	}
}
