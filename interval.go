package supercomplex

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Interval - A closed range [Lo, Hi] of alphabet symbols with Lo <= Hi.
// Empty intervals are never constructed.
type Interval[S Symbol] struct {
	Lo S
	Hi S
}

func (iv Interval[S]) String() string {
	if iv.Lo == iv.Hi {
		return fmt.Sprintf("[%v]", iv.Lo)
	}
	return fmt.Sprintf("[%v-%v]", iv.Lo, iv.Hi)
}

// separated reports that a ends strictly before b starts and the two are not
// adjacent (there is at least one symbol between them).
func separated[S Symbol](a, b Interval[S]) bool {
	// a.Hi < b.Lo guards the increment against overflow.
	return a.Hi < b.Lo && succ(a.Hi) < b.Lo
}

// IntervalSet - A set of pairwise-disjoint, non-adjacent closed intervals,
// kept normalized and sorted by lower bound.  The zero value is the empty set.
type IntervalSet[S Symbol] struct {
	ivs []Interval[S]
}

// NewIntervalSet - Build a set from the given intervals, merging overlaps.
func NewIntervalSet[S Symbol](ivs ...Interval[S]) IntervalSet[S] {
	var set IntervalSet[S]
	for _, iv := range ivs {
		set.Add(iv)
	}
	return set
}

// Add inserts the interval, coalescing it with any stored interval it
// overlaps or touches ([a,b] and [b+1,c] merge into [a,c]).
func (s *IntervalSet[S]) Add(iv Interval[S]) {
	if iv.Hi < iv.Lo {
		panic("supercomplex: inverted interval")
	}
	merged := iv
	out := make([]Interval[S], 0, len(s.ivs)+1)
	placed := false
	for _, cur := range s.ivs {
		switch {
		case separated(cur, merged):
			out = append(out, cur)
		case separated(merged, cur):
			if !placed {
				out = append(out, merged)
				placed = true
			}
			out = append(out, cur)
		default:
			if cur.Lo < merged.Lo {
				merged.Lo = cur.Lo
			}
			if cur.Hi > merged.Hi {
				merged.Hi = cur.Hi
			}
		}
	}
	if !placed {
		out = append(out, merged)
	}
	s.ivs = out
}

// AddSym inserts a single symbol.
func (s *IntervalSet[S]) AddSym(c S) {
	s.Add(Interval[S]{Lo: c, Hi: c})
}

// AddSet unions another set into this one.
func (s *IntervalSet[S]) AddSet(o IntervalSet[S]) {
	for _, iv := range o.ivs {
		s.Add(iv)
	}
}

// Remove subtracts the interval, splitting a stored interval when the
// subtrahend falls strictly inside it.
func (s *IntervalSet[S]) Remove(iv Interval[S]) {
	if iv.Hi < iv.Lo {
		panic("supercomplex: inverted interval")
	}
	out := make([]Interval[S], 0, len(s.ivs)+1)
	for _, cur := range s.ivs {
		if cur.Hi < iv.Lo || cur.Lo > iv.Hi {
			out = append(out, cur)
			continue
		}
		// cur.Lo < iv.Lo implies iv.Lo > Min, so the decrement is safe;
		// symmetrically for the increment below.
		if cur.Lo < iv.Lo {
			out = append(out, Interval[S]{Lo: cur.Lo, Hi: pred(iv.Lo)})
		}
		if cur.Hi > iv.Hi {
			out = append(out, Interval[S]{Lo: succ(iv.Hi), Hi: cur.Hi})
		}
	}
	s.ivs = out
}

// ContainsInterval reports whether some stored interval contains q entirely.
func (s IntervalSet[S]) ContainsInterval(q Interval[S]) bool {
	idx, exact := slices.BinarySearchFunc(s.ivs, q, func(iv, q Interval[S]) int {
		switch {
		case iv.Lo < q.Lo:
			return -1
		case iv.Lo > q.Lo:
			return 1
		}
		return 0
	})
	if !exact {
		if idx == 0 {
			return false
		}
		idx--
	}
	return s.ivs[idx].Lo <= q.Lo && q.Hi <= s.ivs[idx].Hi
}

// Contains reports whether the symbol is a member of the set.
func (s IntervalSet[S]) Contains(c S) bool {
	return s.ContainsInterval(Interval[S]{Lo: c, Hi: c})
}

// Complement returns universe minus set, with universe the whole alphabet.
func (s IntervalSet[S]) Complement(a Alphabet[S]) IntervalSet[S] {
	out := a.Universe()
	for _, iv := range s.ivs {
		out.Remove(iv)
	}
	return out
}

// Intervals - The stored intervals in ascending order.  The returned slice
// aliases the set and must not be modified.
func (s IntervalSet[S]) Intervals() []Interval[S] {
	return s.ivs
}

// Count - The number of disjoint intervals in the set.
func (s IntervalSet[S]) Count() int {
	return len(s.ivs)
}

// Empty reports whether the set contains no symbols.
func (s IntervalSet[S]) Empty() bool {
	return len(s.ivs) == 0
}

// Clone returns a deep copy of the set.
func (s IntervalSet[S]) Clone() IntervalSet[S] {
	return IntervalSet[S]{ivs: slices.Clone(s.ivs)}
}

func (s IntervalSet[S]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.ivs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')
	return b.String()
}
