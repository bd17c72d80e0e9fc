package lib

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenDef
	TokenExtern
	TokenIdentifier
	TokenNumber
	TokenChar
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "eof"
	case TokenDef:
		return "def"
	case TokenExtern:
		return "extern"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenChar:
		return "char"
	default:
		return "?"
	}
}

// Location is the 1-based line and column of a character in the input.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Token is one lexeme. Only the payload field matching Type is set: Ident for
// identifiers, Num and Text for numbers, Char for single characters.
type Token struct {
	Type     TokenType
	Ident    string
	Num      float64
	Text     string
	Char     rune
	Location Location
}

// Is reports whether the token is the single character ch.
func (t Token) Is(ch rune) bool {
	return t.Type == TokenChar && t.Char == ch
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenDef:
		return "keyword: def"
	case TokenExtern:
		return "keyword: extern"
	case TokenIdentifier:
		return fmt.Sprintf("identifier: %s", t.Ident)
	case TokenNumber:
		return fmt.Sprintf("number: %s", t.Text)
	case TokenChar:
		return fmt.Sprintf("char: %s", strconv.QuoteRune(t.Char))
	default:
		return "?"
	}
}
