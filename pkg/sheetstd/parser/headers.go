package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/journal"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

const nbsp = "\u00a0"

// CleanLabel trims a label and replaces non-breaking spaces with plain spaces.
func CleanLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, nbsp, " ")
	return strings.TrimSpace(s)
}

// Canonicalize turns raw header cells into unique string labels.
//
// Each label is stringified and cleaned. An absent or blank label becomes
// Column_<index>. Repeated labels are renamed in first-seen order to
// name_1, name_2, ... skipping any suffix already taken by another label.
// Every change is recorded in j, which may be nil.
func Canonicalize(raw []models.Cell, j *journal.Journal) []string {
	cleaned := make([]string, len(raw))
	for i, c := range raw {
		label := CleanLabel(c.String())
		if label == "" {
			label = fmt.Sprintf("Column_%d", i)
			j.Warn(journal.ActionColumnRenamed, "Column %d has no label, using '%s'", i, label)
		} else if label != c.String() {
			j.Info(journal.ActionColumnRenamed, "Cleaned column label: '%s' -> '%s'", c.String(), label)
		}
		cleaned[i] = label
	}
	return dedupe(cleaned, j)
}

// CanonicalizeLabels is Canonicalize for labels that are already strings.
func CanonicalizeLabels(labels []string, j *journal.Journal) []string {
	cells := make([]models.Cell, len(labels))
	for i, l := range labels {
		cells[i] = models.Text(l)
	}
	return Canonicalize(cells, j)
}

func dedupe(labels []string, j *journal.Journal) []string {
	taken := make(map[string]bool, len(labels))
	for _, l := range labels {
		taken[l] = true
	}

	seen := make(map[string]bool, len(labels))
	next := make(map[string]int)
	result := make([]string, len(labels))
	for i, l := range labels {
		if !seen[l] {
			seen[l] = true
			result[i] = l
			continue
		}

		n := next[l]
		if n == 0 {
			n = 1
		}
		candidate := fmt.Sprintf("%s_%d", l, n)
		for taken[candidate] {
			n++
			candidate = fmt.Sprintf("%s_%d", l, n)
		}
		next[l] = n + 1
		taken[candidate] = true
		seen[candidate] = true
		result[i] = candidate
		j.Warn(journal.ActionColumnRenamed, "Renamed duplicate column: '%s' -> '%s'", l, candidate)
	}
	return result
}
