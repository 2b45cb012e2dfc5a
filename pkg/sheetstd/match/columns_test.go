package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchColumn(t *testing.T) {
	columns := []string{"Q Type", "Question", "Level", "Right Answer", "Marks", "Opt A", "Topic Name"}

	tests := []struct {
		name      string
		field     string
		requested string
		want      string
		method    string
	}{
		{"exact", "Question Type", "Q Type", "Q Type", MethodExact},
		{"insensitive", "Question Type", "  q type ", "Q Type", MethodInsensitive},
		{"nbsp insensitive", "Difficulty Level", "level\u00a0", "Level", MethodInsensitive},
		{"synonym via key", "Correct Answer", "Correct Answer", "Right Answer", MethodSynonym},
		{"synonym via alias", "Score", "points", "Marks", MethodSynonym},
		{"fuzzy", "Topics", "topic", "Topic Name", MethodFuzzy},
		{"empty request", "Author", "", "", ""},
		{"nothing close", "Author", "zzz", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatchColumn(tt.field, columns, tt.requested)
			assert.Equal(t, tt.want, m.Column)
			assert.Equal(t, tt.method, m.Method)
			assert.Equal(t, tt.want != "", m.Matched())
		})
	}
}

func TestMatchColumnSynonymPrefersFieldGroup(t *testing.T) {
	// "question" belongs to both the type and the text groups.
	columns := []string{"Type", "Text"}

	assert.Equal(t, "Text", MatchColumn("Question Text", columns, "question").Column)
	assert.Equal(t, "Type", MatchColumn("Question Type", columns, "question").Column)
}

func TestMatchColumnSynonymBeatsFuzzy(t *testing.T) {
	columns := []string{"Difficult Questions", "Diff"}

	m := MatchColumn("Difficulty Level", columns, "Difficulty Level")
	assert.Equal(t, "Diff", m.Column)
	assert.Equal(t, MethodSynonym, m.Method)
	assert.Equal(t, 1.0, m.Score)
}

func TestMatchColumnFuzzyThreshold(t *testing.T) {
	m := MatchColumn("Author", []string{"abxy"}, "abcd")
	assert.False(t, m.Matched(), "score equal to the threshold is rejected")

	m = MatchColumn("Author", []string{"abxy", "abcx"}, "abcd")
	assert.Equal(t, "abcx", m.Column)
	assert.InDelta(t, 0.75, m.Score, 1e-9)
}
