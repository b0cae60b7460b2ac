package supercomplex

import (
	"golang.org/x/exp/constraints"
)

// Symbol - Constraint on the alphabet element type.  Any fixed-size integer
// type works; byte is the common instantiation.  The pipeline is generic over
// the symbol type and monomorphizes at the call site.
type Symbol interface {
	constraints.Integer
}

// Alphabet - The symbol domain a generator operates over.  Min and Max bound
// every interval the pipeline constructs; symbols outside the bounds are
// rejected with ErrAlphabetOverflow.
type Alphabet[S Symbol] struct {
	Min S
	Max S
}

// NewAlphabet - Construct an alphabet over the closed range [min, max].
func NewAlphabet[S Symbol](min, max S) Alphabet[S] {
	if max < min {
		panic("supercomplex: alphabet with max < min")
	}
	return Alphabet[S]{Min: min, Max: max}
}

// Bytes - The full 8-bit byte alphabet.
func Bytes() Alphabet[byte] {
	return Alphabet[byte]{Min: 0, Max: 0xff}
}

// ASCII - The 7-bit ASCII alphabet.
func ASCII() Alphabet[byte] {
	return Alphabet[byte]{Min: 0, Max: 0x7f}
}

// Contains reports whether c lies within the alphabet bounds.
func (a Alphabet[S]) Contains(c S) bool {
	return c >= a.Min && c <= a.Max
}

// Universe - The interval set covering the whole alphabet.
func (a Alphabet[S]) Universe() IntervalSet[S] {
	var set IntervalSet[S]
	set.Add(Interval[S]{Lo: a.Min, Hi: a.Max})
	return set
}

// succ and pred narrow a half-open endpoint by one.  Callers guarantee the
// argument is not at the corresponding alphabet extreme.
func succ[S Symbol](c S) S { return c + 1 }
func pred[S Symbol](c S) S { return c - 1 }
