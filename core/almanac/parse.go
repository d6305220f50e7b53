package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"almanac/core/mapping"
)

const seedsLabel = "seeds"

// maxLineBytes bounds one input line; the seeds line of a large almanac is
// far longer than bufio's 64 KiB default.
var maxLineBytes = 256 << 20

// Parse reads the almanac text format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each table is sorted and validated through mapping.New. Parse does not
// require every stage of Order to be present; see Validate.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a       *Almanac
		cur     *Stage
		segs    []mapping.Segment
		order   []Stage
		pending = map[Stage][]mapping.Segment{}
		headers = map[Stage]int{}
	)
	flush := func() {
		if cur != nil {
			pending[*cur] = segs
		}
		cur, segs = nil, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		label, rest, isHeader := strings.Cut(line, ":")
		switch {
		case isHeader && strings.TrimSpace(label) == seedsLabel:
			if a != nil {
				return nil, fmt.Errorf("%w: line %d: duplicate seeds line", ErrSyntax, ln)
			}
			seeds, err := parseNumbers(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			a = New(seeds)

		case isHeader:
			if strings.TrimSpace(rest) != "" {
				return nil, fmt.Errorf("%w: line %d: unexpected text after map header", ErrSyntax, ln)
			}
			st, err := parseHeader(label)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			if prev, dup := headers[st]; dup {
				return nil, fmt.Errorf("%w: line %d: %s map already declared on line %d", ErrSyntax, ln, st, prev)
			}
			flush()
			headers[st] = ln
			order = append(order, st)
			cur = &st

		default:
			if cur == nil {
				return nil, fmt.Errorf("%w: line %d: segment outside of a map block", ErrSyntax, ln)
			}
			nums, err := parseNumbers(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("%w: line %d: want 3 fields (destination source length), got %d", ErrSyntax, ln, len(nums))
			}
			segs = append(segs, mapping.Segment{DestinationStart: nums[0], SourceStart: nums[1], Length: nums[2]})
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: longer than %d bytes: %w", ErrSyntax, ln+1, maxLineBytes, err)
		}
		return nil, fmt.Errorf("line %d: %w", ln+1, err)
	}
	flush()

	if a == nil {
		return nil, fmt.Errorf("%w: no %q line", ErrSyntax, seedsLabel)
	}
	for _, st := range order {
		m, err := mapping.New(pending[st])
		if err != nil {
			return nil, fmt.Errorf("%s map (line %d): %w", st, headers[st], err)
		}
		a.Set(st, m)
	}
	return a, nil
}

func parseHeader(label string) (Stage, error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(label), " map")
	if !ok {
		return Stage{}, fmt.Errorf("%w: header %q does not end in \" map:\"", ErrSyntax, label)
	}
	from, to, ok := strings.Cut(name, "-to-")
	if !ok {
		return Stage{}, fmt.Errorf("%w: header %q is not <from>-to-<to>", ErrSyntax, label)
	}
	fd, err := ParseDomain(from)
	if err != nil {
		return Stage{}, err
	}
	td, err := ParseDomain(to)
	if err != nil {
		return Stage{}, err
	}
	return Stage{From: fd, To: td}, nil
}

func parseNumbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q: %v", ErrSyntax, f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
