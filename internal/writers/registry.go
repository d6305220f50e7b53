// internal/writers/registry.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"almanac/internal/output"
)

// ReportFunc renders a complete, buffered list of reports.
type ReportFunc func(w io.Writer, list []output.Report, opt output.Options) error

// CheckFunc renders one check outcome.
type CheckFunc func(w io.Writer, c output.Check, opt output.Options) error

// Writer registries (format → handler). Streaming formats (jsonl) are handled
// by StartReportWriter directly and also registered here for buffered use.
var (
	ReportWriters = map[string]ReportFunc{}
	CheckWriters  = map[string]CheckFunc{}
)

// Register helpers (idempotent last-wins)
func RegisterReport(format string, fn ReportFunc) { ReportWriters[format] = fn }
func RegisterCheck(format string, fn CheckFunc)   { CheckWriters[format] = fn }

// WriteReports dispatches to the registered report writer.
func WriteReports(format string, w io.Writer, list []output.Report, opt output.Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, list, opt)
}

// WriteCheck dispatches to the registered check writer.
func WriteCheck(format string, w io.Writer, c output.Check, opt output.Options) error {
	fn, ok := CheckWriters[format]
	if !ok {
		return fmt.Errorf("unknown check format %q (no writer registered)", format)
	}
	return fn(w, c, opt)
}

// Formats lists the registered report formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for k := range ReportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterReport("text", output.WriteText)
	RegisterReport("json", func(w io.Writer, list []output.Report, _ output.Options) error {
		return output.WriteJSON(w, list)
	})
	RegisterReport("jsonl", writeJSONL)

	RegisterCheck("text", output.WriteCheckText)
	RegisterCheck("json", func(w io.Writer, c output.Check, _ output.Options) error {
		return output.WriteCheckJSON(w, c)
	})
	RegisterCheck("jsonl", func(w io.Writer, c output.Check, _ output.Options) error {
		return json.NewEncoder(w).Encode(output.ToAPICheck(c))
	})
}
