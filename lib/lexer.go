package lib

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

const eof rune = -1

// Lexer turns a character stream into tokens, one per call to Next. It keeps
// a single character of lookahead between calls.
type Lexer struct {
	reader io.RuneReader
	// last is the lookahead character, or eof once the reader is drained.
	last     rune
	location Location
	nextLoc  Location
	done     bool
	err      error
}

func NewLexer(r io.RuneReader) *Lexer {
	return &Lexer{
		reader:   r,
		last:     ' ',
		location: Location{Line: 1, Col: 1},
		nextLoc:  Location{Line: 1, Col: 1},
	}
}

// Err returns the first read error other than io.EOF. Such an error ends the
// input just like io.EOF does.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) advance() {
	if l.done {
		l.last = eof
		return
	}
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		l.done = true
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		l.last = eof
		l.location = l.nextLoc
		return
	}
	l.last = ch
	l.location = l.nextLoc
	if ch == '\n' {
		l.nextLoc.Line++
		l.nextLoc.Col = 1
	} else {
		l.nextLoc.Col++
	}
}

func (l *Lexer) Next() Token {
	for isSpace(l.last) {
		l.advance()
	}
	start := l.location

	switch {
	case isLetter(l.last):
		return l.scanIdentifier(start)
	case isDigit(l.last) || l.last == '.':
		return l.scanNumber(start)
	case l.last == '#':
		l.skipComment()
		return l.Next()
	case l.last == eof:
		// Don't eat the eof, the next call needs to see it too.
		return Token{Type: TokenEOF, Location: start}
	}

	ch := l.last
	l.advance()
	return Token{Type: TokenChar, Char: ch, Location: start}
}

func (l *Lexer) scanIdentifier(start Location) Token {
	var sb strings.Builder
	sb.WriteRune(l.last)
	for {
		l.advance()
		if !isLetter(l.last) && !isDigit(l.last) {
			break
		}
		sb.WriteRune(l.last)
	}

	ident := sb.String()
	switch ident {
	case "def":
		return Token{Type: TokenDef, Location: start}
	case "extern":
		return Token{Type: TokenExtern, Location: start}
	}
	return Token{Type: TokenIdentifier, Ident: ident, Location: start}
}

func (l *Lexer) scanNumber(start Location) Token {
	var sb strings.Builder
	for isDigit(l.last) || l.last == '.' {
		sb.WriteRune(l.last)
		l.advance()
	}
	text := sb.String()
	return Token{Type: TokenNumber, Num: parseNumber(text), Text: text, Location: start}
}

// skipComment discards everything up to, but not including, the next line
// break.
func (l *Lexer) skipComment() {
	for {
		l.advance()
		if l.last == eof || l.last == '\n' || l.last == '\r' {
			return
		}
	}
}

// parseNumber reads the longest prefix of text that is a valid decimal, so
// "1.2.3" is 1.2 and a lone "." is 0. Overflow gives an infinity.
func parseNumber(text string) float64 {
	if i := strings.IndexByte(text, '.'); i >= 0 {
		if j := strings.IndexByte(text[i+1:], '.'); j >= 0 {
			text = text[:i+1+j]
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
