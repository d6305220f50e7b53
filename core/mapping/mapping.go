// Package mapping implements one stage's piecewise translation table and the
// range splitter/translator that push whole intervals through it.
//
// A Mapping is immutable once built by New. Values not covered by any
// segment translate to themselves.
package mapping

import (
	"slices"
	"sort"

	"almanac/core/interval"
)

// Mapping is a table of segments sorted by SourceStart with pairwise disjoint
// source intervals.
type Mapping struct {
	segs []Segment
}

// New copies segs, sorts them by source start, and validates the result.
// It returns an error wrapping ErrMalformedMapping if any segment is empty,
// overflows int64, or overlaps its neighbour.
func New(segs []Segment) (*Mapping, error) {
	sorted := slices.Clone(segs)
	slices.SortStableFunc(sorted, func(a, b Segment) int {
		switch {
		case a.SourceStart < b.SourceStart:
			return -1
		case a.SourceStart > b.SourceStart:
			return 1
		}
		return 0
	})
	for i, s := range sorted {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if i == 0 || !sorted[i-1].Source().Overlaps(s.Source()) {
			continue
		}
		ov, _ := sorted[i-1].Source().Intersect(s.Source())
		return nil, malformedf("segments %q and %q overlap on %s", sorted[i-1].String(), s.String(), ov)
	}
	return &Mapping{segs: sorted}, nil
}

// MustNew is New for static tables; it panics on a malformed table.
func MustNew(segs ...Segment) *Mapping {
	m, err := New(segs)
	if err != nil {
		panic(err)
	}
	return m
}

// Segments returns a copy of the sorted segment table.
func (m *Mapping) Segments() []Segment { return slices.Clone(m.segs) }

// Len returns the number of segments.
func (m *Mapping) Len() int { return len(m.segs) }

// first returns the index of the first segment whose source end is >= v.
func (m *Mapping) first(v int64) int {
	return sort.Search(len(m.segs), func(i int) bool { return m.segs[i].SourceEnd() >= v })
}

// Split partitions r into sub-ranges ordered by Begin, each lying entirely
// inside one segment's source interval or entirely outside all of them.
// The pieces are disjoint and their union is exactly r.
func (m *Mapping) Split(r interval.Range) []interval.Range {
	var out []interval.Range
	rest := r
	for _, s := range m.segs[m.first(r.Begin):] {
		if rest.End() < s.SourceStart {
			break
		}
		if rest.Begin < s.SourceStart {
			out = append(out, interval.FromBounds(rest.Begin, s.SourceStart-1))
			rest = interval.FromBounds(s.SourceStart, rest.End())
		}
		if rest.End() <= s.SourceEnd() {
			return append(out, rest)
		}
		out = append(out, interval.FromBounds(rest.Begin, s.SourceEnd()))
		rest = interval.FromBounds(s.SourceEnd()+1, rest.End())
	}
	return append(out, rest)
}

// Translate maps a range that Split already aligned to segment boundaries.
// The segment containing r.Begin decides the offset for the whole range; a
// range outside every segment is returned unchanged.
func (m *Mapping) Translate(r interval.Range) interval.Range {
	if s, ok := m.lookup(r.Begin); ok {
		return r.Shift(s.Offset())
	}
	return r
}

// TranslateValue maps a single value.
func (m *Mapping) TranslateValue(v int64) int64 {
	if s, ok := m.lookup(v); ok {
		out, _ := s.Apply(v)
		return out
	}
	return v
}

// Apply splits r and translates every piece, appending the results to dst.
func (m *Mapping) Apply(dst []interval.Range, r interval.Range) []interval.Range {
	for _, p := range m.Split(r) {
		dst = append(dst, m.Translate(p))
	}
	return dst
}

func (m *Mapping) lookup(v int64) (Segment, bool) {
	i := m.first(v)
	if i < len(m.segs) && m.segs[i].Source().Contains(v) {
		return m.segs[i], true
	}
	return Segment{}, false
}
