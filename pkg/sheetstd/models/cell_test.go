package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		kind CellKind
	}{
		{"", CellAbsent},
		{"42", CellNumber},
		{"3.5", CellNumber},
		{"NaN", CellText},
		{"true", CellBool},
		{"FALSE", CellBool},
		{"2024-03-05", CellDate},
		{"2024-03-05 10:30:00", CellDate},
		{"What is Go?", CellText},
		{" 7", CellText},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := ParseCell(tt.in)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.in, c.String(), "decoded cells keep their text")
		})
	}
}

func TestCellProjection(t *testing.T) {
	assert.True(t, Text("").IsAbsent())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "TRUE", Bool(true).String())
	assert.Equal(t, "2024-03-05", Date(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "2024-03-05 09:15:00", Date(time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)).String())

	assert.True(t, ParseCell("7").Equal(Number(7)))
	assert.False(t, ParseCell("7").Equal(Text("7")))
}

func TestCellJSON(t *testing.T) {
	row := []Cell{Text("a"), Number(2), Bool(false), Absent(), ParseCell("2024-03-05")}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", 2, false, null, "2024-03-05"]`, string(data))

	var back []Cell
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, len(row))
	assert.Equal(t, CellText, back[0].Kind)
	assert.Equal(t, CellNumber, back[1].Kind)
	assert.Equal(t, CellBool, back[2].Kind)
	assert.True(t, back[3].IsAbsent())
	assert.Equal(t, "2024-03-05", back[4].String())

	var c Cell
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &c))
}

func TestSoftErrorsStayAligned(t *testing.T) {
	var s SoftErrors
	assert.Empty(t, s.Messages())
	assert.NotNil(t, s.Messages())

	s.Add("Unknown Question Type: 'x'", "Row 2: q1")
	s.Add("Required column 'Author' not mapped or not found", NoRowRef)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Row 2: q1", NoRowRef}, s.RowRefs())

	msgs := s.Messages()
	msgs[0] = "changed"
	assert.Equal(t, "Unknown Question Type: 'x'", s.Messages()[0])
}
