// Package output converts run results into the stable wire schema and
// renders the text and JSON forms.
package output

import (
	"cmp"
	"slices"

	"almanac/core/interval"
	"almanac/pkg/api"
)

// Report modes.
const (
	ModeValues = "values"
	ModeRanges = "ranges"
)

// Report is one mode's answer. Ranges is set only when the caller asked for
// the final location ranges.
type Report struct {
	Mode    string
	Minimum int64
	Seeds   int
	Pieces  int
	Ranges  []interval.Range
}

// Check is the equivalence check outcome, decoupled from the pipeline types.
type Check struct {
	OK           bool
	ValuesMin    int64
	SingletonMin int64
	HasRanges    bool
	RangesMin    int64
	BruteChecked bool
	BruteMin     int64
	BruteValues  int64
}

// Options control presentation.
type Options struct {
	Header bool
}

// SortedRanges returns rs ordered by Begin then Length, without touching rs.
func SortedRanges(rs []interval.Range) []interval.Range {
	out := slices.Clone(rs)
	slices.SortStableFunc(out, func(a, b interval.Range) int {
		if c := cmp.Compare(a.Begin, b.Begin); c != 0 {
			return c
		}
		return cmp.Compare(a.Length, b.Length)
	})
	return out
}

// ToAPIResult converts a Report to the v1 wire schema.
func ToAPIResult(r Report) api.ResultV1 {
	v := api.ResultV1{
		Mode:    r.Mode,
		Minimum: r.Minimum,
		Seeds:   r.Seeds,
		Pieces:  r.Pieces,
	}
	for _, rg := range SortedRanges(r.Ranges) {
		v.Ranges = append(v.Ranges, api.RangeV1{Begin: rg.Begin, End: rg.End(), Length: rg.Length})
	}
	return v
}

// ToAPICheck converts a Check to the v1 wire schema.
func ToAPICheck(c Check) api.CheckV1 {
	v := api.CheckV1{
		OK:           c.OK,
		ValuesMin:    c.ValuesMin,
		SingletonMin: c.SingletonMin,
	}
	if c.HasRanges {
		m := c.RangesMin
		v.RangesMin = &m
	}
	if c.BruteChecked {
		m := c.BruteMin
		v.BruteMin = &m
		v.BruteValues = c.BruteValues
	}
	return v
}
