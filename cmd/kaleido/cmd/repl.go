package cmd

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/graeme-hill/kaleido-go/lib"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive shell",
	Long: `Reads definitions, externs and expressions from stdin and reports
each one as it is parsed. A parse error skips one token and carries on.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	out := cmd.OutOrStdout()
	parser := lib.NewParser(lib.NewLexer(bufio.NewReader(cmd.InOrStdin())), s.prec)
	reporter := lib.NewReporter(out, cmd.ErrOrStderr(), s.cfg.Verbose)
	driver := lib.NewDriver(parser, reporter, lib.WithPrompt(out, s.cfg.Prompt))

	err = driver.Run()
	s.logStats(driver.Stats())
	if err != nil {
		printError("reading stdin", err)
		return err
	}
	return nil
}
