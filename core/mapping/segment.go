package mapping

import (
	"fmt"

	"almanac/core/interval"
)

// Segment translates every value of [SourceStart, SourceStart+Length-1]
// onto [DestinationStart, DestinationStart+Length-1], preserving order.
type Segment struct {
	DestinationStart int64
	SourceStart      int64
	Length           int64
}

// Source returns the interval of values the segment applies to.
func (s Segment) Source() interval.Range {
	return interval.Range{Begin: s.SourceStart, Length: s.Length}
}

// Destination returns the interval the segment's source lands on.
func (s Segment) Destination() interval.Range {
	return interval.Range{Begin: s.DestinationStart, Length: s.Length}
}

// SourceEnd is the inclusive last source value.
func (s Segment) SourceEnd() int64 { return s.SourceStart + s.Length - 1 }

// Offset is the amount added to a source value to reach its destination.
func (s Segment) Offset() int64 { return s.DestinationStart - s.SourceStart }

// Apply translates v. ok is false if v lies outside the segment.
func (s Segment) Apply(v int64) (out int64, ok bool) {
	if !s.Source().Contains(v) {
		return v, false
	}
	return s.DestinationStart + (v - s.SourceStart), true
}

func (s Segment) String() string {
	return fmt.Sprintf("%d %d %d", s.DestinationStart, s.SourceStart, s.Length)
}

func (s Segment) validate() error {
	if s.Length <= 0 {
		return malformedf("segment %q has non-positive length", s.String())
	}
	if !s.Source().WellFormed() {
		return malformedf("segment %q source end overflows int64", s.String())
	}
	if !s.Destination().WellFormed() {
		return malformedf("segment %q destination end overflows int64", s.String())
	}
	return nil
}
