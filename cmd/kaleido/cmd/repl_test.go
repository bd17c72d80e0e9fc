package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplCommand(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("def f(x) x;\nf(2) + ;\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, errOut, err := executeRoot(t, "repl")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ready> ready> Parsed a function definition.\n"))
	require.Contains(t, errOut, "Error: 2:8: unknown token when expecting an expression")
	require.Contains(t, errOut, "session finished")
}

func TestReplCommandVerbose(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("1+2*3"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, _, err := executeRoot(t, "repl", "-v")
	require.NoError(t, err)
	require.Contains(t, out, "Parsed a top-level expression.\n(expr (+ 1 (* 2 3)))\n")
}
