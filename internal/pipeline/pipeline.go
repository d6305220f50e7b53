// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"almanac/core/almanac"
	"almanac/core/interval"
	"almanac/core/mapping"
)

var (
	// ErrEmptyRangeSet is returned when a minimum is requested over no values.
	ErrEmptyRangeSet = errors.New("empty range set")
	// ErrInvalidRange is returned for a seed range that is empty or overflows.
	ErrInvalidRange = errors.New("invalid seed range")
)

// Config controls per-stage parallelism.
type Config struct {
	Workers  int // goroutines per stage (>=1); 1 runs sequentially
	MinChunk int // fewest input ranges handed to one goroutine (default 256)
}

// Runner applies the stage chain. It holds no per-run state and is safe for
// concurrent use.
type Runner struct {
	cfg Config
	log *zap.Logger
}

// New returns a Runner. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Runner {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MinChunk < 1 {
		cfg.MinChunk = 256
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log}
}

// Ranges pushes seeds through every stage of almanac.Order. Each stage
// replaces the working set with the split-and-translated pieces of every
// range, in input order. An empty seed set yields an empty result.
func (r *Runner) Ranges(ctx context.Context, t Tables, seeds []interval.Range) ([]interval.Range, error) {
	for i, s := range seeds {
		if !s.WellFormed() {
			return nil, fmt.Errorf("%w: #%d begin=%d length=%d", ErrInvalidRange, i, s.Begin, s.Length)
		}
	}
	maps, err := resolve(t)
	if err != nil {
		return nil, err
	}

	cur := seeds
	for i, m := range maps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := r.stage(ctx, m, cur)
		if err != nil {
			return nil, err
		}
		r.log.Debug("stage applied",
			zap.Stringer("stage", almanac.Order[i]),
			zap.Int("ranges_in", len(cur)),
			zap.Int("ranges_out", len(next)))
		cur = next
	}
	return cur, nil
}

// Values pushes single seed values through every stage. The input slice is
// not modified.
func (r *Runner) Values(ctx context.Context, t Tables, seeds []int64) ([]int64, error) {
	maps, err := resolve(t)
	if err != nil {
		return nil, err
	}
	cur := seeds
	for i, m := range maps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := make([]int64, len(cur))
		for j, v := range cur {
			next[j] = m.TranslateValue(v)
		}
		r.log.Debug("stage applied",
			zap.Stringer("stage", almanac.Order[i]),
			zap.Int("values", len(next)))
		cur = next
	}
	return cur, nil
}

func (r *Runner) stage(ctx context.Context, m *mapping.Mapping, in []interval.Range) ([]interval.Range, error) {
	chunks := min(r.cfg.Workers, len(in)/r.cfg.MinChunk)
	if chunks <= 1 {
		return applyAll(m, in), nil
	}

	parts := make([][]interval.Range, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	size := (len(in) + chunks - 1) / chunks
	for c := 0; c < chunks; c++ {
		lo := min(c*size, len(in))
		hi := min(lo+size, len(in))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[c] = applyAll(m, in[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

func applyAll(m *mapping.Mapping, in []interval.Range) []interval.Range {
	out := make([]interval.Range, 0, len(in))
	for _, r := range in {
		out = m.Apply(out, r)
	}
	return out
}

// MinBegin returns the smallest Begin in rs. Every stage translation is
// increasing within a piece, so this is the smallest reachable value.
func MinBegin(rs []interval.Range) (int64, error) {
	if len(rs) == 0 {
		return 0, ErrEmptyRangeSet
	}
	best := rs[0].Begin
	for _, r := range rs[1:] {
		best = min(best, r.Begin)
	}
	return best, nil
}

// MinValue returns the smallest of vs.
func MinValue(vs []int64) (int64, error) {
	if len(vs) == 0 {
		return 0, ErrEmptyRangeSet
	}
	return slices.Min(vs), nil
}
