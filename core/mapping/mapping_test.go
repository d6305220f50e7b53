package mapping

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/core/interval"
)

// seed-to-soil table of the canonical sample.
func seedToSoil(t *testing.T) *Mapping {
	t.Helper()
	m, err := New([]Segment{
		{DestinationStart: 50, SourceStart: 98, Length: 2},
		{DestinationStart: 52, SourceStart: 50, Length: 48},
	})
	require.NoError(t, err)
	return m
}

func TestNewSortsBySource(t *testing.T) {
	m := seedToSoil(t)
	want := []Segment{
		{DestinationStart: 52, SourceStart: 50, Length: 48},
		{DestinationStart: 50, SourceStart: 98, Length: 2},
	}
	if diff := cmp.Diff(want, m.Segments()); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, m.Len())
}

func TestNewRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		segs []Segment
	}{
		{"zero length", []Segment{{DestinationStart: 1, SourceStart: 1, Length: 0}}},
		{"negative length", []Segment{{DestinationStart: 1, SourceStart: 1, Length: -4}}},
		{"overlap", []Segment{
			{DestinationStart: 0, SourceStart: 10, Length: 5},
			{DestinationStart: 100, SourceStart: 14, Length: 5},
		}},
		{"duplicate start", []Segment{
			{DestinationStart: 0, SourceStart: 10, Length: 1},
			{DestinationStart: 5, SourceStart: 10, Length: 1},
		}},
		{"source overflow", []Segment{{DestinationStart: 0, SourceStart: math.MaxInt64, Length: 2}}},
		{"destination overflow", []Segment{{DestinationStart: math.MaxInt64 - 1, SourceStart: 0, Length: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.segs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedMapping), "got %v", err)
			var me *Error
			require.ErrorAs(t, err, &me)
			assert.NotEmpty(t, me.Msg)
		})
	}
}

func TestNewReportsOverlapInterval(t *testing.T) {
	_, err := New([]Segment{
		{DestinationStart: 100, SourceStart: 14, Length: 5},
		{DestinationStart: 0, SourceStart: 10, Length: 6},
	})
	assert.ErrorContains(t, err, `segments "0 10 6" and "100 14 5" overlap on [14,15]`)
}

func TestNewAcceptsAdjacentSegments(t *testing.T) {
	_, err := New([]Segment{
		{DestinationStart: 0, SourceStart: 10, Length: 5},
		{DestinationStart: 100, SourceStart: 15, Length: 5},
	})
	require.NoError(t, err)
}

func TestSplitSampleSeedRange(t *testing.T) {
	m := seedToSoil(t)

	got := m.Split(interval.Range{Begin: 79, Length: 14})
	assert.Equal(t, []interval.Range{{Begin: 79, Length: 14}}, got)

	got = m.Split(interval.FromBounds(40, 120))
	want := []interval.Range{
		interval.FromBounds(40, 49),
		interval.FromBounds(50, 97),
		interval.FromBounds(98, 99),
		interval.FromBounds(100, 120),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("split mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitEdges(t *testing.T) {
	m := seedToSoil(t)
	cases := []struct {
		name string
		in   interval.Range
		want []interval.Range
	}{
		{"before all", interval.FromBounds(0, 49), []interval.Range{interval.FromBounds(0, 49)}},
		{"past all", interval.FromBounds(100, 500), []interval.Range{interval.FromBounds(100, 500)}},
		{"starts on boundary", interval.FromBounds(50, 60), []interval.Range{interval.FromBounds(50, 60)}},
		{"ends on boundary", interval.FromBounds(45, 50), []interval.Range{interval.FromBounds(45, 49), interval.Single(50)}},
		{"exact segment", interval.FromBounds(98, 99), []interval.Range{interval.FromBounds(98, 99)}},
		{"crosses adjacent segments", interval.FromBounds(96, 99), []interval.Range{interval.FromBounds(96, 97), interval.FromBounds(98, 99)}},
		{"unit in gap", interval.Single(100), []interval.Range{interval.Single(100)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, m.Split(tc.in)); diff != "" {
				t.Fatalf("split %v (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestSplitEmptyMapping(t *testing.T) {
	m := MustNew()
	r := interval.Range{Begin: 3, Length: 9}
	assert.Equal(t, []interval.Range{r}, m.Split(r))
	assert.Equal(t, r, m.Translate(r))
}

func TestTranslateIdentityOutsideSegments(t *testing.T) {
	m := seedToSoil(t)
	for _, r := range []interval.Range{interval.FromBounds(0, 49), interval.FromBounds(100, 1000)} {
		assert.Equal(t, r, m.Translate(r))
	}
}

func TestTranslateAffine(t *testing.T) {
	m := seedToSoil(t)
	assert.Equal(t, interval.Range{Begin: 81, Length: 14}, m.Translate(interval.Range{Begin: 79, Length: 14}))
	assert.Equal(t, interval.Range{Begin: 50, Length: 2}, m.Translate(interval.FromBounds(98, 99)))
	assert.Equal(t, interval.Range{Begin: 52, Length: 48}, m.Translate(interval.FromBounds(50, 97)))
}

func TestSampleScenarioMatchesValues(t *testing.T) {
	m := seedToSoil(t)
	seed := interval.Range{Begin: 79, Length: 14}

	var got []interval.Range
	got = m.Apply(got, seed)
	require.Len(t, got, 1)

	for v := seed.Begin; v <= seed.End(); v++ {
		want := m.TranslateValue(v)
		assert.Equal(t, want, got[0].Begin+(v-seed.Begin), "value %d", v)
	}

	// Boundary values around the second segment, checked both ways.
	for _, tc := range []struct{ in, want int64 }{{79, 81}, {98, 50}, {99, 51}, {100, 100}} {
		assert.Equal(t, tc.want, m.TranslateValue(tc.in), "value %d", tc.in)
		pieces := m.Apply(nil, interval.Single(tc.in))
		require.Len(t, pieces, 1)
		assert.Equal(t, interval.Single(tc.want), pieces[0])
	}
}

func randomMapping(rng *rand.Rand) *Mapping {
	var segs []Segment
	pos := int64(rng.Intn(10))
	for n := rng.Intn(6); n > 0; n-- {
		pos += int64(rng.Intn(6))
		l := int64(1 + rng.Intn(8))
		segs = append(segs, Segment{DestinationStart: int64(rng.Intn(100)), SourceStart: pos, Length: l})
		pos += l
	}
	rng.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })
	return MustNew(segs...)
}

func TestSplitProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 2000; iter++ {
		m := randomMapping(rng)
		r := interval.Range{Begin: int64(rng.Intn(60)) - 5, Length: int64(1 + rng.Intn(60))}
		pieces := m.Split(r)
		require.NotEmpty(t, pieces)

		// Coverage and ordering: pieces tile r exactly, left to right.
		next := r.Begin
		for _, p := range pieces {
			require.True(t, p.WellFormed(), "empty piece %v of %v", p, r)
			require.Equal(t, next, p.Begin, "gap or overlap splitting %v: %v", r, pieces)
			next = p.End() + 1
		}
		require.Equal(t, r.End()+1, next, "pieces %v do not end at %v", pieces, r)

		// Containment: each piece is inside one segment or outside all.
		for _, p := range pieces {
			inside := 0
			for _, s := range m.Segments() {
				if !p.Overlaps(s.Source()) {
					continue
				}
				ov, _ := p.Intersect(s.Source())
				require.Equal(t, p, ov, "piece %v straddles segment %v", p, s)
				inside++
			}
			require.LessOrEqual(t, inside, 1)
		}

		// Translation agrees with per-value translation.
		for _, p := range pieces {
			tr := m.Translate(p)
			require.Equal(t, p.Length, tr.Length)
			for v := p.Begin; v <= p.End(); v++ {
				require.Equal(t, m.TranslateValue(v), tr.Begin+(v-p.Begin))
			}
		}
	}
}

func TestSegmentApply(t *testing.T) {
	s := Segment{DestinationStart: 52, SourceStart: 50, Length: 48}
	v, ok := s.Apply(97)
	assert.True(t, ok)
	assert.Equal(t, int64(99), v)
	v, ok = s.Apply(98)
	assert.False(t, ok)
	assert.Equal(t, int64(98), v)
	assert.Equal(t, int64(2), s.Offset())
	assert.Equal(t, "52 50 48", s.String())
	_, ok = s.Apply(49)
	assert.False(t, ok)
}

func TestLookupAtInt64Edges(t *testing.T) {
	m := MustNew(
		Segment{DestinationStart: 0, SourceStart: math.MaxInt64 - 1, Length: 2},
		Segment{DestinationStart: 10, SourceStart: math.MinInt64, Length: 1},
	)
	assert.Equal(t, int64(1), m.TranslateValue(math.MaxInt64))
	assert.Equal(t, int64(0), m.TranslateValue(math.MaxInt64-1))
	assert.Equal(t, int64(math.MaxInt64-2), m.TranslateValue(math.MaxInt64-2))
	assert.Equal(t, int64(10), m.TranslateValue(math.MinInt64))
	assert.Equal(t, int64(math.MinInt64+1), m.TranslateValue(math.MinInt64+1))
}
