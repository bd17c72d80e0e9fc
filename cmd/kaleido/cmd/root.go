package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/graeme-hill/kaleido-go/lib"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kaleido",
	Short: "Parser front end for a small expression language",
	Long: `kaleido tokenizes and parses function definitions, extern
declarations and top-level expressions.

Commands:
  repl   - interactive shell reading from stdin
  parse  - parse source files and print their syntax trees`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the syntax tree of every parsed item")
}

// session is the state shared by every subcommand for one run.
type session struct {
	id     string
	cfg    lib.Config
	prec   lib.PrecedenceTable
	logger *slog.Logger
}

func newSession(logOut io.Writer) (*session, error) {
	cfg, err := lib.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	prec, err := cfg.Precedence()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})).With("session", id)

	logger.Debug("session started", "config", cfgFile, "operators", len(prec))
	return &session{id: id, cfg: cfg, prec: prec, logger: logger}, nil
}

func (s *session) logStats(stats lib.Stats) {
	s.logger.Info("session finished",
		"definitions", stats.Definitions,
		"externs", stats.Externs,
		"expressions", stats.Expressions,
		"errors", stats.Errors)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
