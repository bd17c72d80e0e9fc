package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graeme-hill/kaleido-go/lib"
)

var errParseFailed = errors.New("parse errors reported")

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse source files",
	Long: `Parses each file and prints one syntax tree per top-level item.
Exits non-zero if any file had parse errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, path := range args {
		module, err := lib.ParseFile(path, s.prec)
		if err != nil {
			printError("parsing file", err)
			return err
		}
		s.logger.Debug("parsed file", "path", path, "items", len(module.Items), "errors", len(module.Errors))

		fmt.Fprintf(out, "; %s\n", module.Name)
		for _, item := range module.Items {
			fmt.Fprintln(out, item.String())
		}
		for _, perr := range module.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", path, perr)
			failed = true
		}
	}

	if failed {
		return errParseFailed
	}
	return nil
}
