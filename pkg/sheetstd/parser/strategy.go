// Package parser reads spreadsheet files into workbooks and header-resolved tables.
package parser

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// Strategy is one way of decoding a workbook file.
// The loader tries strategies in order and keeps the first that succeeds.
type Strategy interface {
	// Name identifies the strategy in journals and analysis summaries.
	Name() string
	// Open prepares the file for reading.
	Open(path string) (Source, error)
}

// Source is a workbook opened by a Strategy.
type Source interface {
	// SheetNames lists sheets in file order.
	SheetNames() []string
	// ReadSheet decodes every row of the named sheet, header first.
	ReadSheet(name string) ([][]models.Cell, error)
	// Close releases the underlying file.
	Close() error
}

// Strategy names.
const (
	StrategyStream = "excelize-stream"
	StrategyRaw    = "excelize-raw"
	StrategyOOXML  = "ooxml"
)

// DefaultStrategies returns the native fast path, the compatibility engine and
// the manual cell-by-cell fallback, in that order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		StreamStrategy{},
		RawStrategy{},
		OOXMLStrategy{},
	}
}
