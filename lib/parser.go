package lib

import (
	"strings"
)

// Parser builds AST nodes from a token stream with one token of lookahead.
// Every Parse method expects the current token to be the first token of the
// construct and, on success, leaves it on the token just after it. On failure
// the method returns a nil node and a *ParseError.
type Parser struct {
	src  TokenSource
	prec PrecedenceTable
	cur  Token
}

// NewParser reads tokens from src. The table is copied; nil means
// DefaultPrecedence. No token is read until Advance is called.
func NewParser(src TokenSource, prec PrecedenceTable) *Parser {
	if prec == nil {
		prec = DefaultPrecedence()
	}
	return &Parser{src: src, prec: prec.clone()}
}

// NewStringParser parses input and is already positioned on its first token.
func NewStringParser(input string, prec PrecedenceTable) *Parser {
	p := NewParser(NewLexer(strings.NewReader(input)), prec)
	p.Advance()
	return p
}

// Advance replaces the current token with the next one from the source.
func (p *Parser) Advance() Token {
	p.cur = p.src.Next()
	return p.cur
}

func (p *Parser) Current() Token {
	return p.cur
}

// numberexpr ::= number
func (p *Parser) ParseNumberExpr() (Expr, error) {
	result := &NumberExpr{Value: p.cur.Num}
	p.Advance()
	return result, nil
}

// parenexpr ::= '(' expression ')'
func (p *Parser) ParseParenExpr() (Expr, error) {
	p.Advance()
	v, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.cur.Is(')') {
		return nil, p.errorf(ExpectedCloseParen, "expected ')'")
	}
	p.Advance()
	return v, nil
}

// identifierexpr
//
//	::= identifier
//	::= identifier '(' expression* ')'
func (p *Parser) ParseIdentifierExpr() (Expr, error) {
	name := p.cur.Ident
	p.Advance()

	if !p.cur.Is('(') {
		return &VariableExpr{Name: name}, nil
	}

	// Call
	p.Advance()
	args := []Expr{}
	if !p.cur.Is(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur.Is(')') {
				break
			}
			if !p.cur.Is(',') {
				return nil, p.errorf(MalformedArgumentList, "expected ')' or ',' in argument list")
			}
			p.Advance()
		}
	}
	p.Advance()

	return &CallExpr{Callee: name, Args: args}, nil
}

// primary
//
//	::= identifierexpr
//	::= numberexpr
//	::= parenexpr
func (p *Parser) ParsePrimary() (Expr, error) {
	switch {
	case p.cur.Type == TokenIdentifier:
		return p.ParseIdentifierExpr()
	case p.cur.Type == TokenNumber:
		return p.ParseNumberExpr()
	case p.cur.Is('('):
		return p.ParseParenExpr()
	default:
		return nil, p.errorf(UnexpectedToken, "unknown token when expecting an expression")
	}
}

// ParseBinOpRHS consumes (operator primary)* pairs while the operator binds
// at least as tightly as minPrec, folding them onto lhs.
//
//	binoprhs ::= (binop primary)*
func (p *Parser) ParseBinOpRHS(minPrec int, lhs Expr) (Expr, error) {
	for {
		tokPrec := p.prec.Lookup(p.cur)
		if tokPrec < minPrec {
			return lhs, nil
		}

		op := p.cur.Char
		p.Advance()

		rhs, err := p.ParsePrimary()
		if err != nil {
			return nil, err
		}

		// If the next operator binds tighter it takes rhs as its lhs. Equal
		// precedence falls through, which makes operators left associative.
		if nextPrec := p.prec.Lookup(p.cur); tokPrec < nextPrec {
			rhs, err = p.ParseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &BinaryExpr{Op: op, LHS: lhs, RHS: rhs}
	}
}

// expression ::= primary binoprhs
func (p *Parser) ParseExpression() (Expr, error) {
	lhs, err := p.ParsePrimary()
	if err != nil {
		return nil, err
	}
	return p.ParseBinOpRHS(0, lhs)
}

// prototype ::= identifier '(' identifier* ')'
func (p *Parser) ParsePrototype() (*Prototype, error) {
	if p.cur.Type != TokenIdentifier {
		return nil, p.errorf(ExpectedIdentifier, "expected function name in prototype")
	}
	name := p.cur.Ident
	p.Advance()

	if !p.cur.Is('(') {
		return nil, p.errorf(ExpectedOpenParen, "expected '(' in prototype")
	}

	params := []string{}
	for p.Advance().Type == TokenIdentifier {
		params = append(params, p.cur.Ident)
	}
	if !p.cur.Is(')') {
		return nil, p.errorf(ExpectedCloseParen, "expected ')' in prototype")
	}
	p.Advance()

	return &Prototype{Name: name, Params: params}, nil
}

// definition ::= 'def' prototype expression
func (p *Parser) ParseDefinition() (*Function, error) {
	p.Advance()
	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &Function{Proto: proto, Body: body}, nil
}

// external ::= 'extern' prototype
func (p *Parser) ParseExtern() (*Prototype, error) {
	p.Advance()
	return p.ParsePrototype()
}

// toplevelexpr ::= expression
func (p *Parser) ParseTopLevelExpr() (*Function, error) {
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return newAnonymousFunction(body), nil
}
