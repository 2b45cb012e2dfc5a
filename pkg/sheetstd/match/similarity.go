// Package match resolves sheet hints and schema fields against the names
// found in a workbook.
package match

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tunable similarity constants.
const (
	// SubstringScore is the score given when one name contains the other.
	SubstringScore = 0.8
	// AcceptThreshold is the score a fuzzy candidate must exceed.
	AcceptThreshold = 0.5
)

// Match methods, in the order they are tried.
const (
	MethodExact       = "exact"
	MethodInsensitive = "insensitive"
	MethodSynonym     = "synonym"
	MethodFuzzy       = "fuzzy"
)

// Normalize folds case, turns non-breaking spaces into spaces and trims.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(cases.Fold().String(s))
}

// EqualFold reports whether a and b are equal after Normalize.
func EqualFold(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Score rates how alike two names are, between 0 and 1.
//
// Names are normalized first. If either contains the other the score is
// SubstringScore. Otherwise it is the number of distinct shared characters
// divided by the larger distinct character count. Empty names score 0.
func Score(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return SubstringScore
	}

	setA, setB := runeSet(a), runeSet(b)
	common := 0
	for r := range setA {
		if setB[r] {
			common++
		}
	}
	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	return float64(common) / float64(denom)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// best returns the index of the highest scoring name, ties going to the
// earliest, or -1 when no score exceeds AcceptThreshold.
func best(query string, names []string) (int, float64) {
	idx, top := -1, 0.0
	for i, name := range names {
		if s := Score(query, name); s > top {
			idx, top = i, s
		}
	}
	if top > AcceptThreshold {
		return idx, top
	}
	return -1, top
}
