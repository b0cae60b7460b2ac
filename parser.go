package supercomplex

import (
	"fmt"
)

// regexParser - Recursive-descent parser for the lexer's regex dialect.
// Precedence, loosest first: alternation, concatenation, quantifier, atom.
// The dialect has no metacharacter '.'; a backslash escapes any character,
// denoting that character literally.
type regexParser[S Symbol] struct {
	input []S
	pos   int
	alpha Alphabet[S]
}

func parseRegex[S Symbol](input []S, alpha Alphabet[S]) (regexNode[S], error) {
	p := &regexParser[S]{input: input, alpha: alpha}
	node, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		// Only an unmatched ')' can stop the alternation before the end.
		return nil, syntaxErrorf(p.pos, "unmatched ')'")
	}
	return node, nil
}

func (p *regexParser[S]) eof() bool {
	return p.pos >= len(p.input)
}

func (p *regexParser[S]) peek() S {
	return p.input[p.pos]
}

func (p *regexParser[S]) symbol(c S, pos int) (S, error) {
	if !p.alpha.Contains(c) {
		return 0, fmt.Errorf("symbol %v at offset %d: %w", c, pos, ErrAlphabetOverflow)
	}
	return c, nil
}

func (p *regexParser[S]) alternation() (regexNode[S], error) {
	first, err := p.sequence()
	if err != nil {
		return nil, err
	}
	alts := []regexNode[S]{first}
	for !p.eof() && p.peek() == S('|') {
		p.pos++
		next, err := p.sequence()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return first, nil
	}
	return &alternationExpr[S]{alts: alts}, nil
}

func (p *regexParser[S]) sequence() (regexNode[S], error) {
	var terms []regexNode[S]
	for !p.eof() {
		if c := p.peek(); c == S('|') || c == S(')') {
			break
		}
		term, err := p.term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	// An empty sequence matches the empty string.
	if len(terms) == 1 {
		return terms[0], nil
	}
	return &sequenceExpr[S]{terms: terms}, nil
}

func (p *regexParser[S]) term() (regexNode[S], error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		switch p.peek() {
		case S('+'):
			p.pos++
			return &quantifiedExpr[S]{child: atom, op: QuantPlus}, nil
		case S('*'):
			p.pos++
			return &quantifiedExpr[S]{child: atom, op: QuantStar}, nil
		case S('?'):
			p.pos++
			return &quantifiedExpr[S]{child: atom, op: QuantOptional}, nil
		}
	}
	return atom, nil
}

func (p *regexParser[S]) atom() (regexNode[S], error) {
	switch c := p.peek(); c {
	case S('+'), S('*'), S('?'):
		return nil, syntaxErrorf(p.pos, "quantifier with no operand")
	case S(']'):
		return nil, syntaxErrorf(p.pos, "unmatched ']'")
	case S('('):
		open := p.pos
		p.pos++
		node, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if p.eof() || p.peek() != S(')') {
			return nil, syntaxErrorf(open, "unterminated group")
		}
		p.pos++
		return node, nil
	case S('['):
		return p.class()
	case S('\\'):
		if p.pos+1 >= len(p.input) {
			return nil, syntaxErrorf(p.pos, "trailing backslash")
		}
		lit, err := p.symbol(p.input[p.pos+1], p.pos+1)
		if err != nil {
			return nil, err
		}
		p.pos += 2
		return &charsetExpr[S]{set: NewIntervalSet(Interval[S]{Lo: lit, Hi: lit})}, nil
	default:
		lit, err := p.symbol(c, p.pos)
		if err != nil {
			return nil, err
		}
		p.pos++
		return &charsetExpr[S]{set: NewIntervalSet(Interval[S]{Lo: lit, Hi: lit})}, nil
	}
}

// class parses a character class.  The opening '[' has been peeked but not
// consumed.  A complement class starts from the universe and subtracts each
// atom; a plain class starts empty and adds them.
func (p *regexParser[S]) class() (regexNode[S], error) {
	open := p.pos
	p.pos++
	complement := false
	if !p.eof() && p.peek() == S('^') {
		complement = true
		p.pos++
	}
	var set IntervalSet[S]
	if complement {
		set = p.alpha.Universe()
	}
	apply := func(iv Interval[S]) {
		if complement {
			set.Remove(iv)
		} else {
			set.Add(iv)
		}
	}
	for {
		if p.eof() {
			return nil, syntaxErrorf(open, "unterminated character class")
		}
		if p.peek() == S(']') {
			p.pos++
			return &charsetExpr[S]{set: set}, nil
		}
		lo, err := p.classChar()
		if err != nil {
			return nil, err
		}
		// A '-' forms a range unless it is the last atom before ']'.
		if p.pos+1 < len(p.input) && p.peek() == S('-') && p.input[p.pos+1] != S(']') {
			p.pos++
			rangePos := p.pos
			hi, err := p.classChar()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, syntaxErrorf(rangePos, "inverted range in character class")
			}
			apply(Interval[S]{Lo: lo, Hi: hi})
			continue
		}
		apply(Interval[S]{Lo: lo, Hi: lo})
	}
}

func (p *regexParser[S]) classChar() (S, error) {
	c := p.peek()
	if c == S('\\') {
		if p.pos+1 >= len(p.input) {
			return 0, syntaxErrorf(p.pos, "trailing backslash")
		}
		lit, err := p.symbol(p.input[p.pos+1], p.pos+1)
		if err != nil {
			return 0, err
		}
		p.pos += 2
		return lit, nil
	}
	lit, err := p.symbol(c, p.pos)
	if err != nil {
		return 0, err
	}
	p.pos++
	return lit, nil
}
