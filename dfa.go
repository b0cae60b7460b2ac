package supercomplex

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"golang.org/x/exp/slices"
)

type dfaTransition[S Symbol, T any] struct {
	characters IntervalSet[S]
	next       *dfaNode[S, T]
}

// dfaNode - A DFA state.  Its identity during subset construction is the
// sorted set of NFA node ids it represents; terminal info is the minimum,
// by precedence, over the terminal NFA nodes it contains.
type dfaNode[S Symbol, T any] struct {
	id          int
	nfaIDs      []int
	terminal    bool
	token       tokenInfo[T]
	transitions []dfaTransition[S, T]
}

type dfaGraph[S Symbol, T any] struct {
	nodes []*dfaNode[S, T]
	start *dfaNode[S, T]
}

func (d *dfaGraph[S, T]) newNode(g *nfaGraph[S, T], nfaIDs []int) *dfaNode[S, T] {
	n := &dfaNode[S, T]{id: len(d.nodes), nfaIDs: nfaIDs}
	for _, id := range nfaIDs {
		nn := g.nodes[id]
		if !nn.terminal {
			continue
		}
		if !n.terminal || nn.token.precedence < n.token.precedence {
			n.terminal = true
			n.token = nn.token
		}
	}
	d.nodes = append(d.nodes, n)
	return n
}

// dfaRegistry - Dedup index for subset construction, keyed by the hashed
// NFA id set with bucket chaining for collisions.  Hashing small-integer
// ids keeps lookups independent of pointer addresses, so iteration order
// never leaks into the result.
type dfaRegistry[S Symbol, T any] struct {
	buckets map[uint32][]*dfaNode[S, T]
}

func hashIDs(ids []int) uint32 {
	h := uint32(2166136261)
	for _, id := range ids {
		h = (h * 16777619) ^ uint32(id)
	}
	return h
}

func (r *dfaRegistry[S, T]) find(ids []int) *dfaNode[S, T] {
	for _, n := range r.buckets[hashIDs(ids)] {
		if slices.Equal(n.nfaIDs, ids) {
			return n
		}
	}
	return nil
}

func (r *dfaRegistry[S, T]) add(n *dfaNode[S, T]) {
	h := hashIDs(n.nfaIDs)
	r.buckets[h] = append(r.buckets[h], n)
}

// newDFA runs subset construction.  Each DFA state's outgoing transitions
// are built over the disjoint cover of its NFA nodes' labels, one singleton
// interval set per cover interval; the aggregator merges them later.
func newDFA[S Symbol, T any](g *nfaGraph[S, T]) *dfaGraph[S, T] {
	d := &dfaGraph[S, T]{}
	reg := &dfaRegistry[S, T]{buckets: make(map[uint32][]*dfaNode[S, T])}

	d.start = d.newNode(g, g.closure([]int{g.start.id}))
	reg.add(d.start)
	work := []*dfaNode[S, T]{d.start}

	for len(work) > 0 {
		cur := work[0]
		work = work[1:]
		for _, iv := range disjointCover(g.labels(cur.nfaIDs)) {
			moved := g.move(cur.nfaIDs, iv)
			if len(moved) == 0 {
				continue
			}
			ids := g.closure(moved)
			next := reg.find(ids)
			if next == nil {
				next = d.newNode(g, ids)
				reg.add(next)
				work = append(work, next)
			}
			cur.transitions = append(cur.transitions, dfaTransition[S, T]{
				characters: NewIntervalSet(iv),
				next:       next,
			})
		}
	}
	return d
}

// transitionOn returns the target reached from n on the cover interval iv,
// or nil when no outgoing label contains it.
func (n *dfaNode[S, T]) transitionOn(iv Interval[S]) *dfaNode[S, T] {
	for _, tr := range n.transitions {
		if tr.characters.ContainsInterval(iv) {
			return tr.next
		}
	}
	return nil
}

func (n *dfaNode[S, T]) labels() []Interval[S] {
	var out []Interval[S]
	for _, tr := range n.transitions {
		out = append(out, tr.characters.Intervals()...)
	}
	return out
}

// checkEquivalence reports whether two states are indistinguishable under
// the previous round's partition.  Only the disjoint cover of the two
// states' own labels matters: a symbol can separate them only where one of
// their label boundaries falls.
func checkEquivalence[S Symbol, T any](p, q *dfaNode[S, T], blockOf []int) (bool, error) {
	if p == q {
		return true, nil
	}
	for _, iv := range disjointCover(append(p.labels(), q.labels()...)) {
		next1 := p.transitionOn(iv)
		next2 := q.transitionOn(iv)
		if (next1 == nil) != (next2 == nil) {
			return false, nil
		}
		if next1 == nil {
			continue
		}
		if next1.id >= len(blockOf) || next2.id >= len(blockOf) {
			return false, errors.Annotatef(ErrInternal, "transition target outside partition map")
		}
		if blockOf[next1.id] != blockOf[next2.id] {
			return false, nil
		}
	}
	return true, nil
}

// minimize rewrites the DFA in place using Moore partition refinement.
// The initial partition groups states by terminal equivalence; each round
// splits blocks with a pivot walk until the partition is stable, then the
// block representatives (smallest state id) replace their blocks.
func (d *dfaGraph[S, T]) minimize() error {
	blockOf := make([]int, len(d.nodes))
	var blocks [][]*dfaNode[S, T]

	// Initial partition: non-terminals together, terminals grouped by
	// token precedence.  Nodes are scanned in id order so the block list
	// and every block's member order are deterministic.
	blockIdx := make(map[int]int)
	for _, n := range d.nodes {
		key := -1
		if n.terminal {
			key = n.token.precedence
		}
		bi, ok := blockIdx[key]
		if !ok {
			bi = len(blocks)
			blockIdx[key] = bi
			blocks = append(blocks, nil)
		}
		blocks[bi] = append(blocks[bi], n)
		blockOf[n.id] = bi
	}

	for {
		newBlocks := make([][]*dfaNode[S, T], 0, len(blocks))
		newBlockOf := make([]int, len(d.nodes))
		for _, block := range blocks {
			rem := block
			for len(rem) > 0 {
				pivot := rem[0]
				var same, diff []*dfaNode[S, T]
				for _, q := range rem {
					equiv, err := checkEquivalence(pivot, q, blockOf)
					if err != nil {
						return err
					}
					if equiv {
						same = append(same, q)
					} else {
						diff = append(diff, q)
					}
				}
				bi := len(newBlocks)
				newBlocks = append(newBlocks, same)
				for _, n := range same {
					newBlockOf[n.id] = bi
				}
				rem = diff
			}
		}
		if len(newBlocks) < len(blocks) {
			return errors.Annotatef(ErrInternal, "partition refinement coarsened %d blocks to %d", len(blocks), len(newBlocks))
		}
		stable := len(newBlocks) == len(blocks)
		blocks, blockOf = newBlocks, newBlockOf
		if stable {
			break
		}
	}

	// Collapse each block onto its representative.  Blocks preserve id
	// order, so the representative is the smallest id in its block.
	reps := make([]*dfaNode[S, T], len(blocks))
	for i, block := range blocks {
		reps[i] = block[0]
	}
	for _, rep := range reps {
		for ti := range rep.transitions {
			rep.transitions[ti].next = reps[blockOf[rep.transitions[ti].next.id]]
		}
	}
	d.start = reps[blockOf[d.start.id]]

	slices.SortFunc(reps, func(a, b *dfaNode[S, T]) int { return a.id - b.id })
	for i, rep := range reps {
		rep.id = i
	}
	d.nodes = reps
	return nil
}

// aggregate merges parallel transitions: per state, transitions with the
// same target collapse into one carrying the union of their interval sets.
func (d *dfaGraph[S, T]) aggregate() {
	for _, n := range d.nodes {
		slices.SortStableFunc(n.transitions, func(a, b dfaTransition[S, T]) int {
			return a.next.id - b.next.id
		})
		out := n.transitions[:0]
		for _, tr := range n.transitions {
			if len(out) > 0 && out[len(out)-1].next == tr.next {
				out[len(out)-1].characters.AddSet(tr.characters)
			} else {
				out = append(out, tr)
			}
		}
		n.transitions = out
	}
}

func (d *dfaGraph[S, T]) ToString() string {
	var b strings.Builder
	for _, n := range d.nodes {
		fmt.Fprintf(&b, "[%d]", n.id)
		if n == d.start {
			b.WriteString(" start")
		}
		if n.terminal {
			fmt.Fprintf(&b, " terminal(%d)", n.token.precedence)
		}
		b.WriteByte('\n')
		for _, tr := range n.transitions {
			fmt.Fprintf(&b, "    %s -> [%d]\n", tr.characters.String(), tr.next.id)
		}
	}
	return b.String()
}
