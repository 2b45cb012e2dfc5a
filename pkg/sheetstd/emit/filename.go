package emit

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Extension is the output file extension.
const Extension = ".xlsx"

// SafeFileName turns a split value into a file name stem. Slashes become
// underscores and only letters, digits, '.', '_', '-' and spaces are kept.
func SafeFileName(value string) string {
	value = strings.NewReplacer("/", "_", `\`, "_").Replace(value)
	var b strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("._- ", r) {
			b.WriteRune(r)
		}
	}
	name := strings.TrimSpace(b.String())
	if name == "" || strings.Trim(name, ".") == "" {
		return "unnamed"
	}
	return name
}

// GroupFileName returns the file name for a split group. used holds names
// already taken in this run; clashes get a numeric suffix.
func GroupFileName(value string, used map[string]bool) string {
	stem := SafeFileName(value)
	name := stem + Extension
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = stem + "_" + strconv.Itoa(n) + Extension
	}
	used[strings.ToLower(name)] = true
	return name
}

// ProcessedFileName returns the file name of an unsplit run.
func ProcessedFileName(input string) string {
	return "processed_" + Stem(input) + Extension
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
