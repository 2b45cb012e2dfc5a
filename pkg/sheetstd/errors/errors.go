// Package errors provides the fatal error types of the standardization engine.
// Each type matches a package sentinel through errors.Is so callers can
// branch on the category without type assertions.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel categories.
var (
	// ErrLoad indicates the input could not be read by any loader strategy.
	ErrLoad = errors.New("load failed")

	// ErrSheetNotFound indicates a requested sheet matched nothing.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrSheetLoad indicates the requested sheet exists but failed to decode.
	ErrSheetLoad = errors.New("sheet failed to load")

	// ErrSchemaUnavailable indicates the reference schema template could not be read.
	ErrSchemaUnavailable = errors.New("schema unavailable")
)

// Is is errors.Is, re-exported so callers need a single import.
var Is = errors.Is

// As is errors.As, re-exported so callers need a single import.
var As = errors.As

// Join is errors.Join, re-exported so callers need a single import.
var Join = errors.Join

// LoadError reports a file that no strategy could read.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("cannot load %q", e.Path)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is implements errors.Is support
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// NewLoadError creates a new LoadError.
func NewLoadError(path, message string, err error) *LoadError {
	return &LoadError{Path: path, Message: message, Err: err}
}

// SheetNotFoundError reports a sheet hint that matched no sheet.
type SheetNotFoundError struct {
	Requested string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("requested sheet %q not found in the workbook. Available sheets: %s",
		e.Requested, strings.Join(e.Available, ", "))
}

// Is implements errors.Is support
func (e *SheetNotFoundError) Is(target error) bool { return target == ErrSheetNotFound }

// SheetLoadError reports a selected sheet that failed to decode.
type SheetLoadError struct {
	Sheet string
	Err   error
}

func (e *SheetLoadError) Error() string {
	return fmt.Sprintf("error reading sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetLoadError) Unwrap() error { return e.Err }

// Is implements errors.Is support
func (e *SheetLoadError) Is(target error) bool { return target == ErrSheetLoad }

// SchemaUnavailableError reports an unreadable schema template.
type SchemaUnavailableError struct {
	Path string
	Err  error
}

func (e *SchemaUnavailableError) Error() string {
	return fmt.Sprintf("schema template %q unavailable: %v", e.Path, e.Err)
}

func (e *SchemaUnavailableError) Unwrap() error { return e.Err }

// Is implements errors.Is support
func (e *SchemaUnavailableError) Is(target error) bool { return target == ErrSchemaUnavailable }

// ReadError represents a failure of one loader strategy on one sheet.
type ReadError struct {
	SheetName string
	Strategy  string
	Err       error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Strategy, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(sheetName, strategy string, err error) *ReadError {
	return &ReadError{
		SheetName: sheetName,
		Strategy:  strategy,
		Err:       err,
	}
}
