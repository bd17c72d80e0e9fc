package lib

import (
	"strconv"
	"strings"
)

// Expr is one of *NumberExpr, *VariableExpr, *BinaryExpr or *CallExpr.
type Expr interface {
	isExpr()
	String() string
}

func (n *NumberExpr) isExpr()   {}
func (v *VariableExpr) isExpr() {}
func (b *BinaryExpr) isExpr()   {}
func (c *CallExpr) isExpr()     {}

// TopLevel is what the driver hands out: a *Function for definitions and
// top-level expressions, a *Prototype for externs.
type TopLevel interface {
	isTopLevel()
	String() string
}

func (p *Prototype) isTopLevel() {}
func (f *Function) isTopLevel()  {}

type NumberExpr struct {
	Value float64
}

type VariableExpr struct {
	Name string
}

// BinaryExpr always has both operands.
type BinaryExpr struct {
	Op  rune
	LHS Expr
	RHS Expr
}

type CallExpr struct {
	Callee string
	Args   []Expr
}

// Prototype is a function's name and parameter names. An empty name marks the
// wrapper of a top-level expression.
type Prototype struct {
	Name   string
	Params []string
}

type Function struct {
	Proto *Prototype
	Body  Expr
}

func newAnonymousFunction(body Expr) *Function {
	return &Function{
		Proto: &Prototype{Name: "", Params: []string{}},
		Body:  body,
	}
}

func (f *Function) IsAnonymous() bool {
	return f.Proto.Name == ""
}

func (n *NumberExpr) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (v *VariableExpr) String() string {
	return v.Name
}

func (b *BinaryExpr) String() string {
	return "(" + string(b.Op) + " " + b.LHS.String() + " " + b.RHS.String() + ")"
}

func (c *CallExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(call ")
	sb.WriteString(c.Callee)
	for _, arg := range c.Args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (p *Prototype) signature() string {
	return p.Name + " (" + strings.Join(p.Params, " ") + ")"
}

func (p *Prototype) String() string {
	return "(extern " + p.signature() + ")"
}

func (f *Function) String() string {
	if f.IsAnonymous() {
		return "(expr " + f.Body.String() + ")"
	}
	return "(def " + f.Proto.signature() + " " + f.Body.String() + ")"
}
