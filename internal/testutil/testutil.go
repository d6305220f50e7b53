// Package testutil provides shared test fixtures.
//
// This package centralises the canonical sample almanac so pipeline, writer
// and app tests run against the same input.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"almanac/core/almanac"
)

// SampleAlmanac is the canonical seven-stage example. Its minimum location is
// 35 for single seed values and 46 for seed ranges.
const SampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// Sample parses SampleAlmanac.
func Sample(t testing.TB) *almanac.Almanac {
	t.Helper()
	a, err := almanac.Parse(strings.NewReader(SampleAlmanac))
	require.NoError(t, err)
	return a
}

// WriteFile writes content into a fresh temp dir and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
