package supercomplex

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"golang.org/x/exp/slices"
)

// LexerTransition - One edge of the flattened state table: the set of
// symbols consumed and the index of the next state.
type LexerTransition[S Symbol] struct {
	Chars IntervalSet[S]
	Next  int
}

// LexerNode - One state of the flattened table.  TerminalInfo holds the
// user payload of the winning production and is meaningful only when
// Terminal is set.
type LexerNode[S Symbol, T any] struct {
	Transitions  []LexerTransition[S]
	Terminal     bool
	TerminalInfo T
}

// Lexer - The finished state table.  It is the generator's sole output and
// holds no references into the intermediate automata.
type Lexer[S Symbol, T any] struct {
	states []LexerNode[S, T]
	start  int
}

// Start - Index of the start state.
func (l *Lexer[S, T]) Start() int {
	return l.start
}

// NumStates - Number of states in the table.
func (l *Lexer[S, T]) NumStates() int {
	return len(l.states)
}

// State - The state at the given index, or nil if out of range.
func (l *Lexer[S, T]) State(idx int) *LexerNode[S, T] {
	if idx < 0 || idx >= len(l.states) {
		return nil
	}
	return &l.states[idx]
}

// States - All states, indexed 0..NumStates-1.
func (l *Lexer[S, T]) States() []LexerNode[S, T] {
	return l.states
}

func (l *Lexer[S, T]) ToString() string {
	var b strings.Builder
	for i, st := range l.states {
		fmt.Fprintf(&b, "[%d]", i)
		if i == l.start {
			b.WriteString(" start")
		}
		if st.Terminal {
			fmt.Fprintf(&b, " terminal(%v)", st.TerminalInfo)
		}
		b.WriteByte('\n')
		for _, tr := range st.Transitions {
			fmt.Fprintf(&b, "    %s -> [%d]\n", tr.Chars.String(), tr.Next)
		}
	}
	return b.String()
}

// flatten assigns each DFA state a table index by breadth-first discovery
// from the start state, visiting each state's transitions in ascending
// first-interval order.  Index assignment therefore depends only on the
// automaton's content, which is what makes Generate deterministic.
func flatten[S Symbol, T any](d *dfaGraph[S, T]) (*Lexer[S, T], error) {
	for _, n := range d.nodes {
		slices.SortFunc(n.transitions, func(a, b dfaTransition[S, T]) int {
			al := a.characters.Intervals()[0].Lo
			bl := b.characters.Intervals()[0].Lo
			switch {
			case al < bl:
				return -1
			case al > bl:
				return 1
			}
			return 0
		})
	}

	index := make([]int, len(d.nodes))
	for i := range index {
		index[i] = -1
	}
	order := []*dfaNode[S, T]{d.start}
	index[d.start.id] = 0
	for i := 0; i < len(order); i++ {
		for _, tr := range order[i].transitions {
			if index[tr.next.id] < 0 {
				index[tr.next.id] = len(order)
				order = append(order, tr.next)
			}
		}
	}
	if len(order) != len(d.nodes) {
		return nil, errors.Annotatef(ErrInternal, "%d of %d states unreachable after minimization", len(d.nodes)-len(order), len(d.nodes))
	}

	states := make([]LexerNode[S, T], len(order))
	for i, n := range order {
		node := LexerNode[S, T]{Terminal: n.terminal}
		if n.terminal {
			node.TerminalInfo = n.token.info
		}
		for _, tr := range n.transitions {
			node.Transitions = append(node.Transitions, LexerTransition[S]{
				Chars: tr.characters.Clone(),
				Next:  index[tr.next.id],
			})
		}
		states[i] = node
	}
	return &Lexer[S, T]{states: states, start: 0}, nil
}
