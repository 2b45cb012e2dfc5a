// Package standardize normalizes the values of individual schema fields.
//
// Rules never fail. Each returns the normalized cell plus a flag telling the
// caller the raw value was not recognized; unrecognized values are kept.
package standardize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/match"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// Func normalizes one cell.
type Func func(models.Cell) (models.Cell, bool)

// Rule binds a normalization to a schema field.
type Rule struct {
	// Field is the schema field the rule applies to.
	Field string
	// Apply normalizes a single value.
	Apply Func
	// ErrorFormat formats the soft error for a flagged raw value.
	ErrorFormat string
}

// Error returns the soft error message for a flagged raw value.
func (r Rule) Error(raw models.Cell) string {
	return fmt.Sprintf(r.ErrorFormat, raw.String())
}

type bucket struct {
	canonical string
	aliases   []string
}

var questionTypes = []bucket{
	{"MCQ", []string{"mcq", "single", "one answer", "single choice", "single select"}},
	{"MAQ", []string{"maq", "multiple", "multiple answers", "multiple choice", "multi select"}},
	{"True/False", []string{"true/false", "true or false", "yes or no", "t/f", "yes/no"}},
	{"FIB", []string{"fib", "fill in the blank", "fill in blank", "fill blank", "fill-in-the-blank"}},
	{"DESC", []string{"desc", "descriptive", "long answer", "essay", "paragraph", "long", "descriptive question"}},
}

var difficultyLevels = []bucket{
	{"Easy", []string{"easy", "beginner", "basic", "e"}},
	{"Medium", []string{"medium", "intermediate", "moderate", "m"}},
	{"Hard", []string{"hard", "difficult", "advanced", "expert", "h"}},
}

func classify(c models.Cell, buckets []bucket) (models.Cell, bool) {
	if c.IsAbsent() {
		return models.Absent(), true
	}
	value := match.Normalize(c.String())
	for _, b := range buckets {
		for _, alias := range b.aliases {
			if value == alias {
				return models.Text(b.canonical), false
			}
		}
	}
	return models.Text(strings.ToLower(strings.TrimSpace(c.String()))), true
}

// QuestionType maps question type aliases to MCQ, MAQ, True/False, FIB or DESC.
func QuestionType(c models.Cell) (models.Cell, bool) {
	return classify(c, questionTypes)
}

// DifficultyLevel maps difficulty aliases to Easy, Medium or Hard.
func DifficultyLevel(c models.Cell) (models.Cell, bool) {
	return classify(c, difficultyLevels)
}

// CorrectAnswer lower-cases an answer and converts option numbers 1-26 to
// letters. Comma separated answers are converted part by part; an out of
// range number is kept and flags the value.
func CorrectAnswer(c models.Cell) (models.Cell, bool) {
	if c.IsAbsent() {
		return models.Absent(), true
	}
	value := strings.ToLower(strings.TrimSpace(c.String()))

	if isDigits(value) {
		letter, ok := optionLetter(value)
		if !ok {
			return models.Text(value), true
		}
		return models.Text(letter), false
	}

	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		flagged := false
		for i, part := range parts {
			part = strings.TrimSpace(part)
			if isDigits(part) {
				if letter, ok := optionLetter(part); ok {
					part = letter
				} else {
					flagged = true
				}
			}
			parts[i] = part
		}
		return models.Text(strings.Join(parts, ",")), flagged
	}

	return models.Text(value), false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func optionLetter(digits string) (string, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 26 {
		return "", false
	}
	return string(rune('a' + n - 1)), true
}

// DefaultRules are the field rules applied during processing.
var DefaultRules = []Rule{
	{Field: "Question Type", Apply: QuestionType, ErrorFormat: "Unknown Question Type: '%v'"},
	{Field: "Difficulty Level", Apply: DifficultyLevel, ErrorFormat: "Unknown Difficulty Level: '%v'"},
	{Field: "Correct Answer", Apply: CorrectAnswer, ErrorFormat: "Invalid Correct Answer format: '%v'"},
}

// Lookup returns the rule for a schema field, compared case-insensitively.
func Lookup(rules []Rule, field string) (Rule, bool) {
	want := match.Normalize(field)
	for _, r := range rules {
		if match.Normalize(r.Field) == want {
			return r, true
		}
	}
	return Rule{}, false
}
