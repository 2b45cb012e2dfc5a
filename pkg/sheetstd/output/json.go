// Package output serializes engine results.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes v as JSON, indented when pretty is set.
// HTML characters are not escaped so labels such as "Option (A) <b>" survive verbatim.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
