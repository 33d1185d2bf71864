package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/itsmostafa/mdbook-summary-generate/internal/preprocessor"
	"github.com/itsmostafa/mdbook-summary-generate/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

// logger writes diagnostics to stderr; stdout carries the book.
var logger = newLogger(os.Stderr, false)

var rootCmd = &cobra.Command{
	Use:   "mdbook-summary-generate",
	Short: "mdBook preprocessor that builds the book outline from the source tree",
	Long: `An mdBook preprocessor that replaces the book's chapter list with an outline
generated from the source directory.

Siblings are grouped by the category tag before the first underscore of their
name ("guide_setup.md" belongs to "guide"), leading digits and dots are stripped
from display names, and each directory takes its body from INDEX.md, README.md,
index.md or readme.md.

Without a subcommand it reads [context, book] JSON from stdin and writes the
book to stdout, as mdBook expects.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		pre := preprocessor.New(logger)
		return preprocessor.Handle(pre, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s %s\n", preprocessor.Name, version.String()))

	// Verbose flag with env var fallback
	defaultVerbose, _ := strconv.ParseBool(os.Getenv("SUMMARY_GENERATE_VERBOSE"))
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", defaultVerbose, "Log walk diagnostics to stderr")
}

// exitError ends the process with a status code and no message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
