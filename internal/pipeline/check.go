package pipeline

import (
	"context"

	"go.uber.org/zap"

	"almanac/core/interval"
)

// bruteBatch bounds how many enumerated values are in flight at once.
const bruteBatch = 1 << 16

// CheckResult compares the value path against the range path.
type CheckResult struct {
	ValuesMin    int64 // single-value mode over the seed values
	SingletonMin int64 // range mode over the seed values as unit ranges

	HasRanges bool  // seed ranges were supplied
	RangesMin int64 // range mode over the seed ranges

	BruteChecked bool  // the seed ranges were small enough to enumerate
	BruteValues  int64 // number of values enumerated
	BruteMin     int64 // single-value mode over every enumerated value
}

// OK reports whether every computed minimum agrees with its counterpart.
func (c CheckResult) OK() bool {
	if c.ValuesMin != c.SingletonMin {
		return false
	}
	if c.BruteChecked && c.BruteMin != c.RangesMin {
		return false
	}
	return true
}

// Check runs values through both code paths and, when ranges is non-nil and
// covers at most limit values, enumerates every value of ranges one at a time
// and compares the result with the range-mode minimum.
func (r *Runner) Check(ctx context.Context, t Tables, values []int64, ranges []interval.Range, limit int64) (CheckResult, error) {
	var res CheckResult

	vs, err := r.Values(ctx, t, values)
	if err != nil {
		return res, err
	}
	if res.ValuesMin, err = MinValue(vs); err != nil {
		return res, err
	}

	unit := make([]interval.Range, len(values))
	for i, v := range values {
		unit[i] = interval.Single(v)
	}
	us, err := r.Ranges(ctx, t, unit)
	if err != nil {
		return res, err
	}
	if res.SingletonMin, err = MinBegin(us); err != nil {
		return res, err
	}

	if ranges == nil {
		return res, nil
	}
	res.HasRanges = true
	rs, err := r.Ranges(ctx, t, ranges)
	if err != nil {
		return res, err
	}
	if res.RangesMin, err = MinBegin(rs); err != nil {
		return res, err
	}

	total, ok := interval.Size(ranges)
	if !ok || total > limit {
		r.log.Debug("skipping exhaustive check", zap.Int64("limit", limit), zap.Bool("overflow", !ok), zap.Int64("values", total))
		return res, nil
	}
	res.BruteMin, err = r.bruteMin(ctx, t, ranges)
	if err != nil {
		return res, err
	}
	res.BruteChecked, res.BruteValues = true, total
	return res, nil
}

func (r *Runner) bruteMin(ctx context.Context, t Tables, ranges []interval.Range) (int64, error) {
	var (
		best  int64
		found bool
		batch = make([]int64, 0, bruteBatch)
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		out, err := r.Values(ctx, t, batch)
		if err != nil {
			return err
		}
		m, _ := MinValue(out)
		if !found || m < best {
			best, found = m, true
		}
		batch = batch[:0]
		return nil
	}
	for _, rg := range ranges {
		for v := rg.Begin; ; v++ {
			batch = append(batch, v)
			if len(batch) == bruteBatch {
				if err := flush(); err != nil {
					return 0, err
				}
			}
			if v == rg.End() {
				break
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrEmptyRangeSet
	}
	return best, nil
}
