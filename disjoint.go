package supercomplex

import (
	"golang.org/x/exp/slices"
)

// coverEvent - One endpoint of a label interval in the sweep: an interval
// [lo, hi] contributes an open event at lo and a close event at hi.
type coverEvent[S Symbol] struct {
	pos  S
	open bool
}

// disjointCover splits the union of the given label intervals into the
// coarsest set of pairwise-disjoint closed intervals such that every label
// is exactly a union of output intervals.  Consequently each output interval
// is either fully contained in or fully disjoint from every label, which is
// what lets move treat an interval like a single alphabet symbol.
//
// Sweep: sort endpoint events by position with opens before closes, track
// the number of currently open labels, and emit the gap between consecutive
// events whenever at least one label is open across it.
func disjointCover[S Symbol](labels []Interval[S]) []Interval[S] {
	if len(labels) == 0 {
		return nil
	}
	events := make([]coverEvent[S], 0, 2*len(labels))
	for _, iv := range labels {
		events = append(events, coverEvent[S]{pos: iv.Lo, open: true})
		events = append(events, coverEvent[S]{pos: iv.Hi, open: false})
	}
	slices.SortFunc(events, func(a, b coverEvent[S]) int {
		switch {
		case a.pos < b.pos:
			return -1
		case a.pos > b.pos:
			return 1
		case a.open && !b.open:
			return -1
		case !a.open && b.open:
			return 1
		}
		return 0
	})

	var out []Interval[S]
	depth := 0
	var last coverEvent[S]
	for i, cur := range events {
		if i > 0 && depth > 0 {
			if last.pos == cur.pos {
				if last.open && !cur.open {
					out = append(out, Interval[S]{Lo: cur.pos, Hi: cur.pos})
				}
			} else {
				// last.pos < cur.pos bounds both adjustments, so
				// neither can leave the symbol range.
				lo, hi := last.pos, cur.pos
				if !last.open {
					lo = succ(lo)
				}
				if cur.open {
					hi = pred(hi)
				}
				if lo <= hi {
					out = append(out, Interval[S]{Lo: lo, Hi: hi})
				}
			}
		}
		last = cur
		if cur.open {
			depth++
		} else {
			depth--
		}
	}
	return out
}
