// Package supercomplex compiles named token productions, given as regular
// expressions, into a minimal deterministic finite automaton over intervals
// of input symbols.  The result is a flat, index-addressed state table that
// downstream code generators can emit as a scanner in any target language;
// the package performs no scanning, I/O, or code emission of its own.
package supercomplex

import (
	"fmt"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Production - One token definition: a regular expression over the alphabet
// and the opaque payload attached to its terminal states.
type Production[S Symbol, T any] struct {
	Info  T
	Regex []S
}

// Generator - Accumulates productions and drives the pipeline: parse,
// Thompson construction, subset construction, Moore minimization, interval
// aggregation, table flattening.  A generator is single-use; Generate
// consumes it.
type Generator[S Symbol, T any] struct {
	alphabet    Alphabet[S]
	logger      *zap.Logger
	productions []Production[S, T]
	aggregate   bool
	consumed    bool
}

// NewGenerator - A fresh generator over the given alphabet.
func NewGenerator[S Symbol, T any](alphabet Alphabet[S]) *Generator[S, T] {
	return &Generator[S, T]{
		alphabet:  alphabet,
		logger:    zap.NewNop(),
		aggregate: true,
	}
}

// WithLogger attaches a logger for stage statistics and production
// diagnostics.  The default is a no-op logger.
func (g *Generator[S, T]) WithLogger(logger *zap.Logger) *Generator[S, T] {
	g.logger = logger
	return g
}

// WithoutAggregation leaves every cover interval as its own transition in
// the final table instead of merging transitions per target.
func (g *Generator[S, T]) WithoutAggregation() *Generator[S, T] {
	g.aggregate = false
	return g
}

// AddProduction appends a production.  Its precedence is its insertion
// index: when several productions accept the same string, the one added
// first wins.
func (g *Generator[S, T]) AddProduction(info T, regex []S) *Generator[S, T] {
	g.productions = append(g.productions, Production[S, T]{Info: info, Regex: regex})
	return g
}

// Generate runs the pipeline and returns the flattened state table.  The
// generator is consumed; a second call fails with ErrGeneratorConsumed.
func (g *Generator[S, T]) Generate() (*Lexer[S, T], error) {
	if g.consumed {
		return nil, errors.Trace(ErrGeneratorConsumed)
	}
	g.consumed = true

	asts := make([]regexNode[S], len(g.productions))
	tokens := make([]tokenInfo[T], len(g.productions))
	for i, prod := range g.productions {
		ast, err := parseRegex(prod.Regex, g.alphabet)
		if err != nil {
			return nil, fmt.Errorf("production %d: %w", i, err)
		}
		if nullable[S](ast) {
			g.logger.Warn("production matches the empty string",
				zap.Int("production", i))
		}
		asts[i] = ast
		tokens[i] = tokenInfo[T]{precedence: i, info: prod.Info}
	}

	nfa := buildNFA(asts, tokens)
	g.logger.Debug("nfa constructed", zap.Int("states", len(nfa.nodes)))

	dfa := newDFA(nfa)
	g.logger.Debug("subset construction complete", zap.Int("states", len(dfa.nodes)))

	if err := dfa.minimize(); err != nil {
		return nil, errors.Trace(err)
	}
	g.logger.Debug("dfa minimized", zap.Int("states", len(dfa.nodes)))

	if g.aggregate {
		dfa.aggregate()
	}
	table, err := flatten(dfa)
	if err != nil {
		return nil, errors.Trace(err)
	}
	g.logger.Debug("table flattened", zap.Int("states", table.NumStates()))
	return table, nil
}
