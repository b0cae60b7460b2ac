package supercomplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func iv(lo, hi byte) Interval[byte] {
	return Interval[byte]{Lo: lo, Hi: hi}
}

func TestIntervalSetAdd(t *testing.T) {
	var set IntervalSet[byte]
	require.True(t, set.Empty())

	set.Add(iv('d', 'f'))
	set.Add(iv('a', 'b'))
	require.Equal(t, []Interval[byte]{iv('a', 'b'), iv('d', 'f')}, set.Intervals())

	// Adjacent intervals coalesce.
	set.Add(iv('c', 'c'))
	require.Equal(t, []Interval[byte]{iv('a', 'f')}, set.Intervals())

	// Overlap extends in both directions.
	set.Add(iv('e', 'k'))
	set.Add(iv('p', 'r'))
	set.Add(iv('j', 'q'))
	require.Equal(t, []Interval[byte]{iv('a', 'r')}, set.Intervals())
	require.Equal(t, 1, set.Count())
}

func TestIntervalSetAddExtremes(t *testing.T) {
	var set IntervalSet[byte]
	set.AddSym(0)
	set.AddSym(0xff)
	require.Equal(t, []Interval[byte]{iv(0, 0), iv(0xff, 0xff)}, set.Intervals())
	set.Add(iv(1, 0xfe))
	require.Equal(t, []Interval[byte]{iv(0, 0xff)}, set.Intervals())
}

func TestIntervalSetRemove(t *testing.T) {
	set := NewIntervalSet(iv('a', 'z'))

	// Interior removal splits.
	set.Remove(iv('m', 'n'))
	require.Equal(t, []Interval[byte]{iv('a', 'l'), iv('o', 'z')}, set.Intervals())

	// Edge removal trims.
	set.Remove(iv('a', 'c'))
	require.Equal(t, []Interval[byte]{iv('d', 'l'), iv('o', 'z')}, set.Intervals())

	// Removal spanning several intervals.
	set.Remove(iv('e', 'y'))
	require.Equal(t, []Interval[byte]{iv('d', 'd'), iv('z', 'z')}, set.Intervals())

	// Removing absent symbols is a no-op.
	set.Remove(iv('f', 'j'))
	require.Equal(t, []Interval[byte]{iv('d', 'd'), iv('z', 'z')}, set.Intervals())
}

func TestIntervalSetContains(t *testing.T) {
	set := NewIntervalSet(iv('a', 'f'), iv('x', 'z'))
	require.True(t, set.Contains('a'))
	require.True(t, set.Contains('c'))
	require.True(t, set.Contains('z'))
	require.False(t, set.Contains('g'))
	require.False(t, set.Contains('w'))

	require.True(t, set.ContainsInterval(iv('b', 'e')))
	require.True(t, set.ContainsInterval(iv('x', 'z')))
	// Subset of the union but not of any single interval.
	require.False(t, set.ContainsInterval(iv('a', 'z')))
	require.False(t, set.ContainsInterval(iv('e', 'g')))

	var empty IntervalSet[byte]
	require.False(t, empty.Contains('a'))
	require.False(t, empty.ContainsInterval(iv('a', 'a')))
}

func TestIntervalSetComplement(t *testing.T) {
	set := NewIntervalSet(iv('a', 'c'))
	comp := set.Complement(Bytes())
	require.Equal(t, []Interval[byte]{iv(0, 'a'-1), iv('c'+1, 0xff)}, comp.Intervals())
	for c := 0; c < 256; c++ {
		require.Equal(t, !set.Contains(byte(c)), comp.Contains(byte(c)), "byte %d", c)
	}

	var empty IntervalSet[byte]
	require.Equal(t, []Interval[byte]{iv(0, 0xff)}, empty.Complement(Bytes()).Intervals())

	full := Bytes().Universe()
	require.True(t, full.Complement(Bytes()).Empty())
}

func TestIntervalSetClone(t *testing.T) {
	set := NewIntervalSet(iv('a', 'c'))
	clone := set.Clone()
	clone.Add(iv('x', 'z'))
	require.Equal(t, 1, set.Count())
	require.Equal(t, 2, clone.Count())
}

func TestIntervalSetAddSet(t *testing.T) {
	a := NewIntervalSet(iv('a', 'c'), iv('x', 'z'))
	b := NewIntervalSet(iv('d', 'f'))
	a.AddSet(b)
	require.Equal(t, []Interval[byte]{iv('a', 'f'), iv('x', 'z')}, a.Intervals())
}
