package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"almanac/core/almanac"
	"almanac/internal/output"
	"almanac/internal/pipeline"
	"almanac/internal/writers"
)

func (s *session) check(ctx context.Context) error {
	o := s.opts

	ranges, err := s.alm.SeedRanges()
	switch {
	case errors.Is(err, almanac.ErrOddSeeds):
		s.log.Warn("odd seed count; range mode skipped", zap.Int("seeds", len(s.alm.Seeds)))
		ranges = nil
	case err != nil:
		return withCode(exitUsage, fmt.Errorf("%s: %w", o.Input, err))
	}

	res, err := s.runner.Check(ctx, s.alm, s.alm.Seeds, ranges, o.ExhaustiveLimit)
	if errors.Is(err, pipeline.ErrEmptyRangeSet) {
		s.log.Warn("no seeds to check", zap.String("input", o.Input))
		return withCode(o.NoMatchExitCode, nil)
	}
	if err != nil {
		return runErr(err)
	}

	c := output.Check{
		OK:           res.OK(),
		ValuesMin:    res.ValuesMin,
		SingletonMin: res.SingletonMin,
		HasRanges:    res.HasRanges,
		RangesMin:    res.RangesMin,
		BruteChecked: res.BruteChecked,
		BruteMin:     res.BruteMin,
		BruteValues:  res.BruteValues,
	}
	if err := writers.WriteCheck(o.Output, s.out, c, output.Options{Header: o.Header}); err != nil {
		return outputErr(err)
	}
	if !c.OK {
		return withCode(exitMismatch, errors.New("value and range paths disagree"))
	}
	return nil
}
