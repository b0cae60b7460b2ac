package supercomplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// membership builds the 256-entry inclusion table for a list of intervals.
func membership(ivs []Interval[byte]) [256]bool {
	var m [256]bool
	for _, r := range ivs {
		for c := int(r.Lo); c <= int(r.Hi); c++ {
			m[c] = true
		}
	}
	return m
}

// checkCover verifies the disjoint-cover contract: outputs are pairwise
// disjoint, every label is either a superset of or disjoint from every
// output interval, and the unions coincide.
func checkCover(t *testing.T, labels []Interval[byte]) {
	t.Helper()
	out := disjointCover(labels)

	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			disjoint := out[i].Hi < out[j].Lo || out[j].Hi < out[i].Lo
			require.True(t, disjoint, "outputs %v and %v overlap", out[i], out[j])
		}
	}

	for _, o := range out {
		for _, l := range labels {
			contained := l.Lo <= o.Lo && o.Hi <= l.Hi
			disjoint := o.Hi < l.Lo || l.Hi < o.Lo
			require.True(t, contained || disjoint,
				"output %v straddles label %v", o, l)
		}
	}

	require.Equal(t, membership(labels), membership(out), "union mismatch")
}

func TestDisjointCover(t *testing.T) {
	cases := [][]Interval[byte]{
		nil,
		{iv('a', 'a')},
		{iv('a', 'z')},
		{iv('a', 'z'), iv('a', 'z')},
		{iv('a', 'f'), iv('d', 'k')},
		{iv('a', 'k'), iv('c', 'f')},
		{iv('a', 'c'), iv('d', 'f')},
		{iv('a', 'c'), iv('x', 'z')},
		{iv('a', 'a'), iv('a', 'b')},
		{iv('b', 'b'), iv('a', 'c'), iv('b', 'z')},
		{iv(0, 0xff), iv('a', 'a'), iv(0xfe, 0xff), iv(0, 0)},
		{iv('0', '9'), iv('1', '9'), iv('0', '0')},
		{iv(' ', ' '), iv('\t', '\t'), iv('\n', '\n'), iv('\r', '\r')},
	}
	for _, labels := range cases {
		checkCover(t, labels)
	}
}

func TestDisjointCoverSplitsBoundaries(t *testing.T) {
	out := disjointCover([]Interval[byte]{iv('a', 'f'), iv('d', 'k')})
	require.Equal(t, []Interval[byte]{iv('a', 'c'), iv('d', 'f'), iv('g', 'k')}, out)

	out = disjointCover([]Interval[byte]{iv('a', 'k'), iv('c', 'f')})
	require.Equal(t, []Interval[byte]{iv('a', 'b'), iv('c', 'f'), iv('g', 'k')}, out)

	// Identical labels collapse to a single output interval.
	out = disjointCover([]Interval[byte]{iv('a', 'z'), iv('a', 'z')})
	require.Equal(t, []Interval[byte]{iv('a', 'z')}, out)
}

func TestDisjointCoverCoarseness(t *testing.T) {
	// Non-touching labels pass through unsplit.
	out := disjointCover([]Interval[byte]{iv('a', 'c'), iv('x', 'z')})
	require.Equal(t, []Interval[byte]{iv('a', 'c'), iv('x', 'z')}, out)

	// Adjacent labels stay separate pieces (each label must remain a
	// union of outputs).
	out = disjointCover([]Interval[byte]{iv('a', 'c'), iv('d', 'f')})
	require.Equal(t, []Interval[byte]{iv('a', 'c'), iv('d', 'f')}, out)
}
