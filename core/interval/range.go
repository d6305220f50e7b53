// Package interval provides the closed integer Range that flows through the
// stage pipeline.
package interval

import (
	"fmt"
	"math"
)

// Range is the closed interval [Begin, Begin+Length-1].
//
// Ranges are plain values; two Ranges with equal bounds are interchangeable.
type Range struct {
	Begin  int64
	Length int64
}

// FromBounds returns the Range covering [begin, end]. end must be >= begin.
func FromBounds(begin, end int64) Range {
	return Range{Begin: begin, Length: end - begin + 1}
}

// Single returns the unit Range holding only v.
func Single(v int64) Range { return Range{Begin: v, Length: 1} }

// WellFormed reports whether r is non-empty and End does not overflow.
// All other methods on a Range require that the Range is well-formed.
func (r Range) WellFormed() bool {
	return r.Length > 0 && r.Begin+(r.Length-1) >= r.Begin
}

// End returns the inclusive last value of r.
func (r Range) End() int64 { return r.Begin + r.Length - 1 }

// Contains returns true if r contains v.
func (r Range) Contains(v int64) bool {
	return r.Begin <= v && v <= r.End()
}

// Overlaps returns true if r and r2 share at least one value.
func (r Range) Overlaps(r2 Range) bool {
	return min(r.End(), r2.End()) >= max(r.Begin, r2.Begin)
}

// Intersect returns the overlap of r and r2. ok is false when they are
// disjoint, in which case the returned Range is the zero value.
func (r Range) Intersect(r2 Range) (out Range, ok bool) {
	lo := max(r.Begin, r2.Begin)
	hi := min(r.End(), r2.End())
	if hi < lo {
		return Range{}, false
	}
	return FromBounds(lo, hi), true
}

// Shift returns r moved by delta, keeping its length.
func (r Range) Shift(delta int64) Range {
	return Range{Begin: r.Begin + delta, Length: r.Length}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Begin, r.End())
}

// Size returns the total number of values covered by rs, counting
// overlapping values once per Range. ok is false if the sum overflows int64.
func Size(rs []Range) (n int64, ok bool) {
	for _, r := range rs {
		if n > math.MaxInt64-r.Length {
			return 0, false
		}
		n += r.Length
	}
	return n, true
}
