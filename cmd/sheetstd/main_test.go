package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

func writeSheet(t *testing.T, path string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		row := row
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	schema := writeSheet(t, filepath.Join(dir, "format.xlsx"), [][]interface{}{
		{"Question Type", "Question Text", "Correct Answer", "Author"},
	})
	input := writeSheet(t, filepath.Join(dir, "quiz.xlsx"), [][]interface{}{
		{"Type", "Question", "Answer"},
		{"single", "What is 2+2?", 2},
		{"essay", "Describe channels", "free"},
	})
	outDir := filepath.Join(dir, "out")

	t.Run("schema", func(t *testing.T) {
		out, err := runCLI(t, "schema", "--schema", schema, "--json")
		require.NoError(t, err)
		var fields []string
		require.NoError(t, json.Unmarshal([]byte(out), &fields))
		assert.Equal(t, []string{"Question Type", "Question Text", "Correct Answer", "Author"}, fields)
	})

	t.Run("analyze", func(t *testing.T) {
		out, err := runCLI(t, "analyze", input, "--schema", schema, "--json")
		require.NoError(t, err)
		var analysis models.Analysis
		require.NoError(t, json.Unmarshal([]byte(out), &analysis))
		assert.Equal(t, "quiz.xlsx", analysis.BookName)
		assert.Equal(t, 2, analysis.RowCount)
		assert.Equal(t, "Sheet1", analysis.SelectedSheet)
	})

	t.Run("process with proposed mapping", func(t *testing.T) {
		out, err := runCLI(t, "process", input, "--schema", schema, "-o", outDir, "--set", "Author=QA Team", "--json")
		require.NoError(t, err)

		var res models.ProcessResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Empty(t, res.Errors)
		require.Len(t, res.OutputGroups, 1)
		assert.Equal(t, filepath.Join(outDir, "quiz", "processed_quiz.xlsx"), res.OutputGroups[0].Path)

		f, err := excelize.OpenFile(res.OutputGroups[0].Path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Questions")
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Question Type", "Question Text", "Correct Answer", "Author"},
			{"MCQ", "What is 2+2?", "b", "QA Team"},
			{"DESC", "Describe channels", "free", "QA Team"},
		}, rows)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := runCLI(t, "process", filepath.Join(dir, "nope.xlsx"), "--schema", schema)
		assert.Error(t, err)
	})

	t.Run("bad assignment", func(t *testing.T) {
		_, err := runCLI(t, "process", input, "--schema", schema, "-o", outDir, "--set", "Author")
		assert.Error(t, err)
	})
}
