package models

// ColumnInfo describes one source column of the selected sheet.
type ColumnInfo struct {
	// Name is the canonical column label.
	Name string `json:"name"`
	// Type is the dominant cell kind, or "mixed".
	Type string `json:"type"`
	// SampleValues holds up to three non-empty values.
	SampleValues []Cell `json:"sample_values"`
}

// SheetSummary describes one sheet of the analyzed workbook.
type SheetSummary struct {
	Columns  int    `json:"columns"`
	Rows     int    `json:"rows"`
	Strategy string `json:"strategy,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Analysis is the result of analyzing a workbook.
type Analysis struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Columns describes the selected sheet's columns.
	Columns []ColumnInfo `json:"columns"`
	// RowCount is the number of data rows in the selected sheet.
	RowCount int `json:"row_count"`
	// ColCount is the number of columns in the selected sheet.
	ColCount int `json:"col_count"`
	// SheetNames lists every sheet in file order.
	SheetNames []string `json:"sheet_names"`
	// SelectedSheet is the sheet the engine chose.
	SelectedSheet string `json:"selected_sheet"`
	// SelectionMethod tells how the sheet was chosen.
	SelectionMethod string `json:"selection_method"`
	// PerSheetSummary maps sheet name to its summary.
	PerSheetSummary map[string]SheetSummary `json:"per_sheet_summary"`
}

// OutputGroup is one written output document.
type OutputGroup struct {
	// Name is the split value, or "all" for unsplit output.
	Name string `json:"name"`
	// Path is the written file path.
	Path string `json:"path"`
	// RowCount is the number of data rows written.
	RowCount int `json:"row_count"`
	// Placeholder is set when the group matched no rows and a blank row was written.
	Placeholder bool `json:"placeholder,omitempty"`
	// Writer names the writer strategy that produced the file.
	Writer string `json:"writer,omitempty"`
}

// ProcessResult is the result of one process run.
type ProcessResult struct {
	// OutputGroups lists the written documents.
	OutputGroups []OutputGroup `json:"output_groups"`
	// JournalPath is the persisted journal document.
	JournalPath string `json:"journal_path"`
	// Journal holds the run's journal entries.
	Journal []JournalEntry `json:"journal"`
	// Errors lists soft errors; aligned with ErrorRowRefs.
	Errors []string `json:"errors"`
	// ErrorRowRefs lists the row reference of each soft error.
	ErrorRowRefs []string `json:"error_row_refs"`
}

// JournalEntry is one timestamped journal record.
type JournalEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}
