package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"almanac/core/interval"
	"almanac/internal/cli"
	"almanac/internal/output"
	"almanac/internal/pipeline"
	"almanac/internal/writers"
)

func (s *session) solve(ctx context.Context) error {
	o := s.opts

	// Fail on odd seeds before any report is written.
	var seedRanges []interval.Range
	if o.Mode != cli.ModeValues {
		var err error
		if seedRanges, err = s.alm.SeedRanges(); err != nil {
			return withCode(exitUsage, fmt.Errorf("%s: %w", o.Input, err))
		}
	}

	inCh, writeErr := writers.StartReportWriter(s.out, o.Output, output.Options{Header: o.Header}, 2)
	found, perr := s.emitReports(ctx, seedRanges, inCh)
	close(inCh)

	if err := <-writeErr; err != nil {
		return outputErr(err)
	}
	if perr != nil {
		return perr
	}
	if found == 0 {
		s.log.Warn("no seeds reached a location", zap.String("input", o.Input))
		return withCode(o.NoMatchExitCode, nil)
	}
	return nil
}

// emitReports runs the selected modes and sends one report per non-empty
// result. It returns how many reports were sent.
func (s *session) emitReports(ctx context.Context, seedRanges []interval.Range, inCh chan<- output.Report) (int, error) {
	o := s.opts
	send := func(r output.Report) error {
		select {
		case inCh <- r:
			s.log.Info("solved", zap.String("mode", r.Mode), zap.Int64("minimum", r.Minimum), zap.Int("pieces", r.Pieces))
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	found := 0
	if o.Mode != cli.ModeRanges {
		finals, err := s.runner.Values(ctx, s.alm, s.alm.Seeds)
		if err != nil {
			return found, runErr(err)
		}
		if m, err := pipeline.MinValue(finals); err == nil {
			if err := send(output.Report{Mode: output.ModeValues, Minimum: m, Seeds: len(s.alm.Seeds), Pieces: len(finals)}); err != nil {
				return found, runErr(err)
			}
			found++
		} else if !errors.Is(err, pipeline.ErrEmptyRangeSet) {
			return found, runErr(err)
		}
	}

	if o.Mode != cli.ModeValues {
		finals, err := s.runner.Ranges(ctx, s.alm, seedRanges)
		if err != nil {
			return found, runErr(err)
		}
		if m, err := pipeline.MinBegin(finals); err == nil {
			r := output.Report{Mode: output.ModeRanges, Minimum: m, Seeds: len(seedRanges), Pieces: len(finals)}
			if o.EmitRanges {
				r.Ranges = finals
			}
			if err := send(r); err != nil {
				return found, runErr(err)
			}
			found++
		} else if !errors.Is(err, pipeline.ErrEmptyRangeSet) {
			return found, runErr(err)
		}
	}
	return found, nil
}
