package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeBounds(t *testing.T) {
	r := Range{Begin: 79, Length: 14}
	assert.Equal(t, int64(92), r.End())
	assert.True(t, r.Contains(79))
	assert.True(t, r.Contains(92))
	assert.False(t, r.Contains(93))
	assert.False(t, r.Contains(78))
	assert.Equal(t, r, FromBounds(79, 92))
	assert.Equal(t, "[79,92]", r.String())
}

func TestWellFormed(t *testing.T) {
	cases := []struct {
		name string
		r    Range
		want bool
	}{
		{"unit", Single(0), true},
		{"negative begin", Range{Begin: -5, Length: 3}, true},
		{"empty", Range{Begin: 1, Length: 0}, false},
		{"negative length", Range{Begin: 1, Length: -2}, false},
		{"max end", Range{Begin: math.MaxInt64, Length: 1}, true},
		{"overflow", Range{Begin: math.MaxInt64, Length: 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.WellFormed())
		})
	}
}

func TestOverlapsAndIntersect(t *testing.T) {
	a := FromBounds(10, 20)

	got, ok := a.Intersect(FromBounds(15, 30))
	require.True(t, ok)
	assert.Equal(t, FromBounds(15, 20), got)
	assert.True(t, a.Overlaps(FromBounds(20, 25)))

	_, ok = a.Intersect(FromBounds(21, 30))
	assert.False(t, ok)
	assert.False(t, a.Overlaps(FromBounds(21, 30)))
	assert.False(t, a.Overlaps(FromBounds(0, 9)))
}

func TestShift(t *testing.T) {
	assert.Equal(t, Range{Begin: 81, Length: 14}, Range{Begin: 79, Length: 14}.Shift(2))
	assert.Equal(t, Range{Begin: 40, Length: 3}, Range{Begin: 50, Length: 3}.Shift(-10))
}

func TestSize(t *testing.T) {
	n, ok := Size([]Range{{Begin: 79, Length: 14}, {Begin: 55, Length: 13}})
	require.True(t, ok)
	assert.Equal(t, int64(27), n)

	n, ok = Size(nil)
	require.True(t, ok)
	assert.Zero(t, n)

	_, ok = Size([]Range{{Begin: 0, Length: math.MaxInt64}, {Begin: 0, Length: 1}})
	assert.False(t, ok)
}
