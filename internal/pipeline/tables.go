// internal/pipeline/tables.go
package pipeline

import (
	"almanac/core/almanac"
	"almanac/core/mapping"
)

// Tables is the minimal capability the pipeline needs.
// *almanac.Almanac satisfies it; tests may use fakes.
type Tables interface {
	Mapping(almanac.Stage) (*mapping.Mapping, error)
}

// resolve looks up every stage of almanac.Order before any work starts, so a
// missing table aborts the run up front.
func resolve(t Tables) ([]*mapping.Mapping, error) {
	out := make([]*mapping.Mapping, 0, len(almanac.Order))
	for _, st := range almanac.Order {
		m, err := t.Mapping(st)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
