package lib

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder keeps everything a Driver hands to its handler.
type recorder struct {
	items  []TopLevel
	errors []error
}

func (r *recorder) HandleDefinition(fn *Function) { r.items = append(r.items, fn) }
func (r *recorder) HandleExtern(proto *Prototype) { r.items = append(r.items, proto) }
func (r *recorder) HandleTopLevelExpr(fn *Function) { r.items = append(r.items, fn) }
func (r *recorder) HandleError(err error) { r.errors = append(r.errors, err) }

func runDriver(t *testing.T, src string) (*recorder, Stats) {
	rec := &recorder{}
	d := NewDriver(NewParser(NewLexer(strings.NewReader(src)), nil), rec)
	require.NoError(t, d.Run())
	return rec, d.Stats()
}

func itemStrings(items []TopLevel) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

func TestDriverDispatch(t *testing.T) {
	rec, stats := runDriver(t, `
# a small program
extern sin(x);
def double(x) x*2;
double(sin(1)) + 3;
`)
	require.Empty(t, rec.errors)
	require.Equal(t, []string{
		"(extern sin (x))",
		"(def double (x) (* x 2))",
		"(expr (+ (call double (call sin 1)) 3))",
	}, itemStrings(rec.items))
	require.Equal(t, Stats{Definitions: 1, Externs: 1, Expressions: 1}, stats)
}

func TestDriverWithoutSemicolons(t *testing.T) {
	rec, _ := runDriver(t, "def one() 1 extern two() one()")
	require.Equal(t, []string{
		"(def one () 1)",
		"(extern two ())",
		"(expr (call one))",
	}, itemStrings(rec.items))
}

func TestDriverEmptyInput(t *testing.T) {
	rec, stats := runDriver(t, "")
	require.Empty(t, rec.items)
	require.Empty(t, rec.errors)
	require.Equal(t, Stats{}, stats)
}

func TestDriverOnlySemicolons(t *testing.T) {
	rec, stats := runDriver(t, ";;;")
	require.Empty(t, rec.items)
	require.Equal(t, Stats{}, stats)
}

func TestDriverRecoversBySkippingToken(t *testing.T) {
	rec, stats := runDriver(t, "def 1; 2")
	require.Len(t, rec.errors, 1)
	require.ErrorIs(t, rec.errors[0], ErrExpectedIdentifier)
	require.Equal(t, []string{"(expr 2)"}, itemStrings(rec.items))
	require.Equal(t, Stats{Expressions: 1, Errors: 1}, stats)
}

func TestDriverErrorThenDefinition(t *testing.T) {
	rec, stats := runDriver(t, ") def f(x) x")
	require.Len(t, rec.errors, 1)
	require.ErrorIs(t, rec.errors[0], ErrUnexpectedToken)
	require.Equal(t, []string{"(def f (x) x)"}, itemStrings(rec.items))
	require.Equal(t, 1, stats.Definitions)
}

func TestDriverPrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewParser(NewLexer(strings.NewReader("1;")), nil)
	d := NewDriver(p, NewReporter(&out, &out, false), WithPrompt(&out, "ready> "))
	require.NoError(t, d.Run())
	require.Equal(t, "ready> ready> Parsed a top-level expression.\nready> ready> ", out.String())
}

func TestDriverReadError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{}
	d := NewDriver(NewParser(NewLexer(&failingReader{data: "1+2", err: boom}), nil), rec)
	err := d.Run()
	require.ErrorIs(t, err, boom)
	require.Len(t, rec.items, 1)
}

func TestReporter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewParser(NewLexer(strings.NewReader("def f(a) a extern g() 1+ ; 4")), nil)
	require.NoError(t, NewDriver(p, NewReporter(&out, &errOut, false)).Run())

	require.Equal(t, "Parsed a function definition.\nParsed an extern.\nParsed a top-level expression.\n", out.String())
	require.Equal(t, "Error: 1:26: unknown token when expecting an expression, got <char: ';'>\n", errOut.String())
}

func TestReporterVerbose(t *testing.T) {
	var out bytes.Buffer
	p := NewParser(NewLexer(strings.NewReader("1+2*3")), nil)
	require.NoError(t, NewDriver(p, NewReporter(&out, &out, true)).Run())
	require.Equal(t, "Parsed a top-level expression.\n(expr (+ 1 (* 2 3)))\n", out.String())
}
