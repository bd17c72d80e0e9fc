package lib

import (
	"fmt"
	"io"
)

// Handler receives each top-level construct in source order, or the error
// that stopped it from being parsed.
type Handler interface {
	HandleDefinition(fn *Function)
	HandleExtern(proto *Prototype)
	HandleTopLevelExpr(fn *Function)
	HandleError(err error)
}

type Stats struct {
	Definitions int
	Externs     int
	Expressions int
	Errors      int
}

// Driver is the top-level loop: it picks the parse entry point from the
// current token and recovers from errors by skipping one token.
type Driver struct {
	parser  *Parser
	handler Handler
	prompt  string
	promptW io.Writer
	stats   Stats
}

type DriverOption func(*Driver)

// WithPrompt writes prompt to w before each top-level construct.
func WithPrompt(w io.Writer, prompt string) DriverOption {
	return func(d *Driver) {
		d.promptW = w
		d.prompt = prompt
	}
}

func NewDriver(p *Parser, h Handler, opts ...DriverOption) *Driver {
	d := &Driver{parser: p, handler: h}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Stats() Stats {
	return d.stats
}

func (d *Driver) showPrompt() {
	if d.promptW != nil && d.prompt != "" {
		fmt.Fprint(d.promptW, d.prompt)
	}
}

// Run reads the first token and loops until end of input. It only returns an
// error when the underlying character source failed.
func (d *Driver) Run() error {
	d.showPrompt()
	d.parser.Advance()

	for {
		d.showPrompt()
		tok := d.parser.Current()

		switch {
		case tok.Type == TokenEOF:
			if src, ok := d.parser.src.(sourceErr); ok && src.Err() != nil {
				return fmt.Errorf("reading input: %w", src.Err())
			}
			return nil
		case tok.Is(';'):
			// Top-level semicolons are ignored.
			d.parser.Advance()
		case tok.Type == TokenDef:
			d.handleDefinition()
		case tok.Type == TokenExtern:
			d.handleExtern()
		default:
			d.handleTopLevelExpr()
		}
	}
}

func (d *Driver) handleDefinition() {
	fn, err := d.parser.ParseDefinition()
	if err != nil {
		d.fail(err)
		return
	}
	d.stats.Definitions++
	d.handler.HandleDefinition(fn)
}

func (d *Driver) handleExtern() {
	proto, err := d.parser.ParseExtern()
	if err != nil {
		d.fail(err)
		return
	}
	d.stats.Externs++
	d.handler.HandleExtern(proto)
}

func (d *Driver) handleTopLevelExpr() {
	fn, err := d.parser.ParseTopLevelExpr()
	if err != nil {
		d.fail(err)
		return
	}
	d.stats.Expressions++
	d.handler.HandleTopLevelExpr(fn)
}

// fail reports err and skips a token so the loop can make progress.
func (d *Driver) fail(err error) {
	d.stats.Errors++
	d.handler.HandleError(err)
	d.parser.Advance()
}

// Reporter is a Handler that prints one status line per construct, the way
// an interactive shell does.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

func NewReporter(out io.Writer, errOut io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, errOut: errOut, verbose: verbose}
}

func (r *Reporter) report(msg string, node TopLevel) {
	fmt.Fprintln(r.out, msg)
	if r.verbose {
		fmt.Fprintln(r.out, node.String())
	}
}

func (r *Reporter) HandleDefinition(fn *Function) {
	r.report("Parsed a function definition.", fn)
}

func (r *Reporter) HandleExtern(proto *Prototype) {
	r.report("Parsed an extern.", proto)
}

func (r *Reporter) HandleTopLevelExpr(fn *Function) {
	r.report("Parsed a top-level expression.", fn)
}

func (r *Reporter) HandleError(err error) {
	fmt.Fprintf(r.errOut, "Error: %v\n", err)
}
