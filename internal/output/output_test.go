package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/core/interval"
	"almanac/pkg/api"
)

func TestTSVHeader_Stable(t *testing.T) {
	const want = "mode\tminimum\tseeds\tpieces"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func sampleReports() []Report {
	return []Report{
		{Mode: ModeValues, Minimum: 35, Seeds: 4, Pieces: 4},
		{Mode: ModeRanges, Minimum: 46, Seeds: 2, Pieces: 3, Ranges: []interval.Range{
			{Begin: 82, Length: 3}, {Begin: 46, Length: 10}, {Begin: 46, Length: 2},
		}},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReports()[:1], Options{Header: true}))
	assert.Equal(t, TSVHeader+"\nvalues\t35\t4\t4\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteText(&buf, sampleReports(), Options{Header: false}))
	assert.Equal(t, "values\t35\t4\t4\nranges\t46\t2\t3\n\n"+
		"ranges\t46\t47\t2\n"+
		"ranges\t46\t55\t10\n"+
		"ranges\t82\t84\t3\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReports()))

	var got []api.ResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Ranges)
	assert.Equal(t, api.RangeV1{Begin: 46, End: 47, Length: 2}, got[1].Ranges[0])
}

func TestWriteCheck(t *testing.T) {
	c := Check{OK: true, ValuesMin: 35, SingletonMin: 35, HasRanges: true, RangesMin: 46}

	var buf bytes.Buffer
	require.NoError(t, WriteCheckText(&buf, c, Options{Header: true}))
	assert.Equal(t, "check\tvalue\nvalues_min\t35\nsingleton_min\t35\nranges_min\t46\nstatus\tok\n", buf.String())

	c.OK, c.BruteChecked, c.BruteMin, c.BruteValues = false, true, 40, 27
	buf.Reset()
	require.NoError(t, WriteCheckJSON(&buf, c))
	var v api.CheckV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &v))
	assert.False(t, v.OK)
	require.NotNil(t, v.BruteMin)
	assert.Equal(t, int64(40), *v.BruteMin)
	assert.Equal(t, int64(27), v.BruteValues)
}

func TestSortedRangesLeavesInput(t *testing.T) {
	in := []interval.Range{{Begin: 9, Length: 1}, {Begin: 1, Length: 1}}
	out := SortedRanges(in)
	assert.Equal(t, int64(1), out[0].Begin)
	assert.Equal(t, int64(9), in[0].Begin)
}
