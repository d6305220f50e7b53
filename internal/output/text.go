// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints one TSV row per report. If any report carries ranges, a
// second table follows after a blank line with one row per final range.
func WriteText(w io.Writer, list []Report, opt Options) error {
	if opt.Header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	withRanges := false
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Mode, r.Minimum, r.Seeds, r.Pieces); err != nil {
			return err
		}
		withRanges = withRanges || len(r.Ranges) > 0
	}
	if !withRanges {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if opt.Header {
		if _, err := fmt.Fprintln(w, RangesHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		for _, rg := range SortedRanges(r.Ranges) {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Mode, rg.Begin, rg.End(), rg.Length); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteCheckText prints the check as key/value rows ending in a status row.
func WriteCheckText(w io.Writer, c Check, opt Options) error {
	type row struct {
		k string
		v any
	}
	rows := []row{{"values_min", c.ValuesMin}, {"singleton_min", c.SingletonMin}}
	if c.HasRanges {
		rows = append(rows, row{"ranges_min", c.RangesMin})
	}
	if c.BruteChecked {
		rows = append(rows, row{"brute_min", c.BruteMin}, row{"brute_values", c.BruteValues})
	}
	status := "ok"
	if !c.OK {
		status = "MISMATCH"
	}
	rows = append(rows, row{"status", status})

	if opt.Header {
		if _, err := fmt.Fprintln(w, CheckHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", r.k, r.v); err != nil {
			return err
		}
	}
	return nil
}
