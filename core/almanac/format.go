package almanac

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// WriteTo renders a in the text format accepted by Parse. Known stages are
// written in Order, any others after them; segments appear sorted by source.
func (a *Almanac) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString(seedsLabel + ":")
	for _, s := range a.Seeds {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatInt(s, 10))
	}
	bw.WriteByte('\n')

	for _, st := range a.stages() {
		fmt.Fprintf(bw, "\n%s map:\n", st)
		for _, seg := range a.Maps[st].Segments() {
			bw.WriteString(seg.String())
			bw.WriteByte('\n')
		}
	}
	err := bw.Flush()
	return cw.n, err
}

// stages lists the stages present in a, Order first.
func (a *Almanac) stages() []Stage {
	var out []Stage
	known := map[Stage]bool{}
	for _, st := range Order {
		known[st] = true
		if a.Maps[st] != nil {
			out = append(out, st)
		}
	}
	var extra []Stage
	for st, m := range a.Maps {
		if !known[st] && m != nil {
			extra = append(extra, st)
		}
	}
	slices.SortFunc(extra, func(x, y Stage) int {
		if x.From != y.From {
			return int(x.From) - int(y.From)
		}
		return int(x.To) - int(y.To)
	})
	return append(out, extra...)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
