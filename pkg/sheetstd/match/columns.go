package match

// Match is the outcome of MatchColumn. An empty Column means unmatched.
type Match struct {
	Column string  `json:"column"`
	Method string  `json:"method,omitempty"`
	Score  float64 `json:"score,omitempty"`
}

// Matched reports whether a source column was found.
func (m Match) Matched() bool { return m.Column != "" }

// MatchColumn finds the source column for a schema field given the
// requested column name. The first step that succeeds wins:
//
//  1. exact name
//  2. case, whitespace and non-breaking-space insensitive name
//  3. synonym table: the requested name and a column belong to the same group
//  4. fuzzy score above AcceptThreshold, ties going to the earliest column
//
// An empty requested name is unmatched.
func MatchColumn(field string, columns []string, requested string) Match {
	if requested == "" {
		return Match{}
	}

	for _, col := range columns {
		if col == requested {
			return Match{Column: col, Method: MethodExact, Score: 1}
		}
	}

	lookup := make(map[string]string, len(columns))
	for _, col := range columns {
		key := Normalize(col)
		if _, ok := lookup[key]; !ok {
			lookup[key] = col
		}
	}
	want := Normalize(requested)
	if col, ok := lookup[want]; ok {
		return Match{Column: col, Method: MethodInsensitive, Score: 1}
	}

	for _, g := range groupsFor(field) {
		if !g.Contains(want) {
			continue
		}
		for _, col := range columns {
			if g.Contains(Normalize(col)) {
				return Match{Column: col, Method: MethodSynonym, Score: 1}
			}
		}
	}

	if idx, score := best(requested, columns); idx >= 0 {
		return Match{Column: columns[idx], Method: MethodFuzzy, Score: score}
	}
	return Match{}
}
