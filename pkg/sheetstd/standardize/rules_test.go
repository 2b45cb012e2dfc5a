package standardize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

func TestCorrectAnswer(t *testing.T) {
	tests := []struct {
		in      models.Cell
		want    string
		flagged bool
	}{
		{models.Text("3"), "c", false},
		{models.Number(3), "c", false},
		{models.Text("1,2,30"), "a,b,30", true},
		{models.Text("B"), "b", false},
		{models.Text(" 26 "), "z", false},
		{models.Text("0"), "0", true},
		{models.Text("27"), "27", true},
		{models.Text("99999999999999999999"), "99999999999999999999", true},
		{models.Text("1, c ,4"), "a,c,d", false},
		{models.Text("A,B"), "a,b", false},
		{models.Text("Paris"), "paris", false},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, flagged := CorrectAnswer(tt.in)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.flagged, flagged)
		})
	}
}

func TestQuestionType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		flagged bool
	}{
		{"mcq", "MCQ", false},
		{" Single Choice ", "MCQ", false},
		{"Multiple Choice", "MAQ", false},
		{"T/F", "True/False", false},
		{"fill-in-the-blank", "FIB", false},
		{"Essay", "DESC", false},
		{"Matching", "matching", true},
		{" Straße ", "straße", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, flagged := QuestionType(models.Text(tt.in))
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.flagged, flagged)
		})
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		flagged bool
	}{
		{"E", "Easy", false},
		{"intermediate", "Medium", false},
		{"Expert", "Hard", false},
		{"Impossible", "impossible", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, flagged := DifficultyLevel(models.Text(tt.in))
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.flagged, flagged)
		})
	}
}

func TestAbsentValuesAreFlagged(t *testing.T) {
	for _, fn := range []Func{QuestionType, DifficultyLevel, CorrectAnswer} {
		got, flagged := fn(models.Absent())
		assert.True(t, got.IsAbsent())
		assert.True(t, flagged)
	}
}

func TestLookup(t *testing.T) {
	rule, ok := Lookup(DefaultRules, " correct answer")
	assert.True(t, ok)
	assert.Equal(t, "Correct Answer", rule.Field)
	assert.Equal(t, "Invalid Correct Answer format: '42'", rule.Error(models.Text("42")))

	_, ok = Lookup(DefaultRules, "Question Text")
	assert.False(t, ok)
}
