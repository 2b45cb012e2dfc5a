package sheetstd

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/errors"
)

// Fatal error categories, re-exported from the errors package.
var (
	ErrLoad              = errors.ErrLoad
	ErrSheetNotFound     = errors.ErrSheetNotFound
	ErrSheetLoad         = errors.ErrSheetLoad
	ErrSchemaUnavailable = errors.ErrSchemaUnavailable
)

type (
	// LoadError reports a file that no loader strategy could read.
	LoadError = errors.LoadError
	// SheetNotFoundError reports a sheet hint that matched no sheet.
	SheetNotFoundError = errors.SheetNotFoundError
	// SheetLoadError reports a selected sheet that failed to decode.
	SheetLoadError = errors.SheetLoadError
	// SchemaUnavailableError reports an unreadable schema template.
	SchemaUnavailableError = errors.SchemaUnavailableError
)
