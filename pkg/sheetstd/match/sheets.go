package match

import (
	"strings"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/errors"
)

// Sheet selection methods used when no hint is given.
const (
	MethodDefault     = "default"
	MethodMostColumns = "most-columns"
	MethodFirst       = "first"
)

// SheetCandidate summarizes one sheet for selection.
type SheetCandidate struct {
	Name    string
	Columns int
	Rows    int
	Err     error
}

// Selection is the outcome of SelectSheet.
type Selection struct {
	Name   string  `json:"name"`
	Method string  `json:"method"`
	Score  float64 `json:"score,omitempty"`
}

// SelectSheet picks the working sheet.
//
// Without a hint it prefers a usable, non-empty sheet named defaultName, then
// the usable sheet with the most columns among those with data, then the
// first usable sheet, then the first sheet. With a hint it tries an exact
// name, a case and whitespace insensitive name, then the best fuzzy score.
// A chosen sheet that failed to load is reported as a SheetLoadError.
func SelectSheet(candidates []SheetCandidate, hint, defaultName string) (Selection, error) {
	if len(candidates) == 0 {
		return Selection{}, errors.NewLoadError("", "workbook contains no sheets", nil)
	}

	var sel Selection
	if strings.TrimSpace(hint) == "" {
		sel = selectWithoutHint(candidates, defaultName)
	} else {
		var err error
		if sel, err = selectByHint(candidates, hint); err != nil {
			return Selection{}, err
		}
	}

	for _, c := range candidates {
		if c.Name == sel.Name && c.Err != nil {
			return Selection{}, &errors.SheetLoadError{Sheet: c.Name, Err: c.Err}
		}
	}
	return sel, nil
}

func selectWithoutHint(candidates []SheetCandidate, defaultName string) Selection {
	for _, c := range candidates {
		if c.Name == defaultName && c.Err == nil && c.Rows > 0 {
			return Selection{Name: c.Name, Method: MethodDefault}
		}
	}

	bestIdx := -1
	for i, c := range candidates {
		if c.Err != nil || c.Rows < 1 {
			continue
		}
		if bestIdx < 0 || c.Columns > candidates[bestIdx].Columns {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return Selection{Name: candidates[bestIdx].Name, Method: MethodMostColumns}
	}

	for _, c := range candidates {
		if c.Err == nil {
			return Selection{Name: c.Name, Method: MethodFirst}
		}
	}
	return Selection{Name: candidates[0].Name, Method: MethodFirst}
}

func selectByHint(candidates []SheetCandidate, hint string) (Selection, error) {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	for _, name := range names {
		if name == hint {
			return Selection{Name: name, Method: MethodExact, Score: 1}, nil
		}
	}

	want := Normalize(hint)
	for _, name := range names {
		if Normalize(name) == want {
			return Selection{Name: name, Method: MethodInsensitive, Score: 1}, nil
		}
	}

	if idx, score := best(hint, names); idx >= 0 {
		return Selection{Name: names[idx], Method: MethodFuzzy, Score: score}, nil
	}

	return Selection{}, &errors.SheetNotFoundError{Requested: hint, Available: names}
}
