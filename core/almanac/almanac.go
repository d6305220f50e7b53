// Package almanac holds the parsed input of a run: the seed list and one
// mapping table per stage, plus the text adapter that builds it.
package almanac

import (
	"errors"
	"fmt"

	"almanac/core/interval"
	"almanac/core/mapping"
)

var (
	// ErrSyntax marks input text that does not follow the almanac format.
	ErrSyntax = errors.New("almanac syntax error")
	// ErrMissingStage is returned when a stage of Order has no table.
	ErrMissingStage = errors.New("missing stage")
	// ErrOddSeeds is returned when seeds cannot be read as (begin, length) pairs.
	ErrOddSeeds = errors.New("odd number of seed values")
)

// Almanac is the seed list and the stage tables. Maps is keyed by Stage;
// tables are never mutated after construction.
type Almanac struct {
	Seeds []int64
	Maps  map[Stage]*mapping.Mapping
}

// New returns an empty Almanac ready for Set.
func New(seeds []int64) *Almanac {
	return &Almanac{Seeds: seeds, Maps: make(map[Stage]*mapping.Mapping, len(Order))}
}

// Set stores the table for s, replacing any previous one.
func (a *Almanac) Set(s Stage, m *mapping.Mapping) { a.Maps[s] = m }

// Mapping returns the table for s.
func (a *Almanac) Mapping(s Stage) (*mapping.Mapping, error) {
	m, ok := a.Maps[s]
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingStage, s)
	}
	return m, nil
}

// Validate reports every stage of Order that has no table.
func (a *Almanac) Validate() error {
	var errs []error
	for _, s := range Order {
		if _, err := a.Mapping(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SeedRanges reads Seeds two at a time as (begin, length) pairs.
func (a *Almanac) SeedRanges() ([]interval.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddSeeds, len(a.Seeds))
	}
	out := make([]interval.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r := interval.Range{Begin: a.Seeds[i], Length: a.Seeds[i+1]}
		if !r.WellFormed() {
			return nil, fmt.Errorf("%w: seed range %d %d is empty or overflows", ErrSyntax, r.Begin, r.Length)
		}
		out = append(out, r)
	}
	return out, nil
}
