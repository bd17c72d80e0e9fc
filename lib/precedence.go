package lib

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidOperator = errors.New("invalid binary operator")

// PrecedenceTable maps binary operators to their precedence. Higher binds
// tighter. Only positive entries count as operators.
type PrecedenceTable map[rune]int

func DefaultPrecedence() PrecedenceTable {
	return PrecedenceTable{
		'<': 10,
		'+': 20,
		'-': 20,
		'*': 40,
	}
}

func (t PrecedenceTable) clone() PrecedenceTable {
	c := make(PrecedenceTable, len(t))
	for op, prec := range t {
		c[op] = prec
	}
	return c
}

// WithOperator returns a copy of the table with op bound at prec.
func (t PrecedenceTable) WithOperator(op rune, prec int) (PrecedenceTable, error) {
	if prec <= 0 {
		return nil, fmt.Errorf("%w: precedence of '%c' must be positive, got %d", ErrInvalidOperator, op, prec)
	}
	if op > unicode.MaxASCII || (!unicode.IsPunct(op) && !unicode.IsSymbol(op)) {
		return nil, fmt.Errorf("%w: %q is not an ASCII punctuation character", ErrInvalidOperator, op)
	}
	if strings.ContainsRune("(),;#.", op) {
		return nil, fmt.Errorf("%w: '%c' is reserved", ErrInvalidOperator, op)
	}
	c := t.clone()
	c[op] = prec
	return c, nil
}

// Lookup returns the precedence of tok as a binary operator, or -1 when tok
// is not one.
func (t PrecedenceTable) Lookup(tok Token) int {
	if tok.Type != TokenChar || tok.Char > unicode.MaxASCII {
		return -1
	}
	prec, ok := t[tok.Char]
	if !ok || prec <= 0 {
		return -1
	}
	return prec
}
