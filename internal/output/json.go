// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"almanac/pkg/api"
)

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []Report) error {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return encodePretty(w, out)
}

// WriteCheckJSON writes the check as one pretty-indented JSON object.
func WriteCheckJSON(w io.Writer, c Check) error {
	return encodePretty(w, ToAPICheck(c))
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
