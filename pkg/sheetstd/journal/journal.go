// Package journal records the ordered events and soft errors of one engine run.
//
// A Journal is owned by a single engine instance and is not safe for
// concurrent use. Every entry is mirrored to the engine's zerolog logger.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/output"
)

// TimestampFormat is the layout of entry timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// Common actions.
const (
	ActionAnalysis    = "File Analysis"
	ActionLoaded      = "File Loaded"
	ActionMapping     = "Mapping Applied"
	ActionSplit       = "File Split"
	ActionSaved       = "File Saved"
	ActionCustomValue = "Custom Value Applied"
	ActionError       = "Error"

	ActionSheetLoad     = "Sheet Load"
	ActionColumnRenamed = "Column Renamed"
	ActionSheetSelected = "Sheet Selected"
	ActionColumnMatched = "Column Matched"
)

// Journal is an append-only log of processing events.
type Journal struct {
	runID   string
	entries []models.JournalEntry
	log     zerolog.Logger
	now     func() time.Time
}

// New creates a journal that mirrors entries to log.
func New(log zerolog.Logger) *Journal {
	return NewWithClock(log, time.Now)
}

// NewWithClock creates a journal with an explicit clock.
func NewWithClock(log zerolog.Logger, now func() time.Time) *Journal {
	if now == nil {
		now = time.Now
	}
	id := uuid.NewString()
	return &Journal{
		runID: id,
		log:   log.With().Str("run_id", id).Logger(),
		now:   now,
	}
}

// RunID returns the identifier stamped on every mirrored log line.
func (j *Journal) RunID() string { return j.runID }

// Record appends an entry at the given level. Recording on a nil journal is a no-op.
func (j *Journal) Record(level zerolog.Level, action, details string) {
	if j == nil {
		return
	}
	j.entries = append(j.entries, models.JournalEntry{
		Timestamp: j.now().Format(TimestampFormat),
		Level:     level.String(),
		Action:    action,
		Details:   details,
	})
	j.log.WithLevel(level).Str("action", action).Msg(details)
}

// Info appends an informational entry.
func (j *Journal) Info(action, format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.Record(zerolog.InfoLevel, action, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (j *Journal) Warn(action, format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.Record(zerolog.WarnLevel, action, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (j *Journal) Error(action, format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.Record(zerolog.ErrorLevel, action, fmt.Sprintf(format, args...))
}

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

// Entries returns a copy of the entries in insertion order.
func (j *Journal) Entries() []models.JournalEntry {
	return append([]models.JournalEntry{}, j.entries...)
}

// Document is the persisted form of a run.
type Document struct {
	FileName       string                `json:"file_name"`
	ProcessingTime string                `json:"processing_time"`
	RunID          string                `json:"run_id"`
	Entries        []models.JournalEntry `json:"entries"`
	Errors         []string              `json:"errors"`
	ErrorRowRefs   []string              `json:"error_row_refs"`
}

// Save writes the journal document into dir, named by the current time,
// and returns the written path.
func (j *Journal) Save(dir, fileName string, soft *models.SoftErrors) (string, error) {
	now := j.now()
	doc := Document{
		FileName:       fileName,
		ProcessingTime: now.Format(TimestampFormat),
		RunID:          j.runID,
		Entries:        j.Entries(),
		Errors:         soft.Messages(),
		ErrorRowRefs:   soft.RowRefs(),
	}

	data, err := output.ToJSON(doc, true)
	if err != nil {
		return "", fmt.Errorf("encode journal: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("log_%s.json", now.Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write journal: %w", err)
	}
	return path, nil
}
