package supercomplex

import (
	"fmt"

	"github.com/pingcap/errors"
)

// Error kinds surfaced by the generator.
var (
	// ErrSyntax - A production's regular expression is malformed.
	ErrSyntax = errors.New("regex syntax error")
	// ErrAlphabetOverflow - An interval endpoint falls outside the alphabet.
	ErrAlphabetOverflow = errors.New("symbol outside alphabet bounds")
	// ErrInternal - A pipeline invariant was violated; indicates a bug.
	ErrInternal = errors.New("internal invariant violated")
	// ErrGeneratorConsumed - Generate was called a second time.
	ErrGeneratorConsumed = errors.New("generator already consumed")
)

// SyntaxError - A regex syntax error carrying the byte position of the
// offending construct within the production's expression.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error at offset %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxErrorf(pos int, format string, args ...interface{}) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
