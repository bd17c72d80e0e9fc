package lib

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	ExpectedCloseParen
	ExpectedIdentifier
	ExpectedOpenParen
	MalformedArgumentList
)

var (
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrExpectedCloseParen    = errors.New("expected close paren")
	ErrExpectedIdentifier    = errors.New("expected identifier")
	ErrExpectedOpenParen     = errors.New("expected open paren")
	ErrMalformedArgumentList = errors.New("malformed argument list")
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case ExpectedCloseParen:
		return "ExpectedCloseParen"
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case ExpectedOpenParen:
		return "ExpectedOpenParen"
	case MalformedArgumentList:
		return "MalformedArgumentList"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedToken:
		return ErrUnexpectedToken
	case ExpectedCloseParen:
		return ErrExpectedCloseParen
	case ExpectedIdentifier:
		return ErrExpectedIdentifier
	case ExpectedOpenParen:
		return ErrExpectedOpenParen
	case MalformedArgumentList:
		return ErrMalformedArgumentList
	default:
		return nil
	}
}

// ParseError describes why a parse operation produced no result. Msg is the
// text a REPL prints; Kind is for callers that need to tell failures apart.
type ParseError struct {
	Kind ErrorKind
	Msg  string
	Got  Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s, got <%s>", e.Got.Location, e.Msg, e.Got)
}

// Is matches the sentinel error for the kind, so errors.Is(err,
// ErrExpectedCloseParen) works through any wrapping.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (p *Parser) errorf(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Got:  p.cur,
	}
}
