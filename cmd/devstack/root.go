package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/devstack/internal/app"
	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/domain/lifecycle"
	"github.com/felixgeelhaar/devstack/internal/domain/sequence"
)

var (
	// Global flags
	cfgFile   string
	projDir   string
	verbose   bool
	quiet     bool
	dryRun    bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "devstack",
	Short: "Set up, reset, restart and clean a local container stack",
	Long: `devstack drives the compose stack of a local development environment
through fixed sequences of container commands:

  setup        check prerequisites, build and start, install dependencies
  fresh-start  remove containers, volumes, images and caches, then set up
  restart      stop and start the containers, then clear the cache
  cleanup      remove containers, volumes, project images and caches

Failed steps are reported as warnings and the sequence continues. Setup
stops early when the container runtime or compose tool is missing, or when
the containers fail to build or start.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: devstack.yaml or devstack.toml in --dir)")
	rootCmd.PersistentFlags().StringVarP(&projDir, "dir", "C", "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "hide status lines and warnings")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "print commands instead of running them")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", app.LogFormatText, "log format (text, json)")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

// newApp builds the application from the global flags.
var newApp = func(out io.Writer) (*app.App, error) {
	return app.New(out, app.Options{
		Dir:        projDir,
		ConfigPath: cfgFile,
		DryRun:     dryRun,
		Verbose:    verbose,
		Quiet:      quiet,
		LogFormat:  logFormat,
	})
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var list *config.ErrorList
	if errors.As(err, &list) {
		if verbose {
			return list.Format()
		}
		return list.Error()
	}

	if userErr := config.GetUserError(err); userErr != nil {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}

	var abortErr *sequence.AbortError
	if errors.As(err, &abortErr) {
		if errors.Is(err, context.Canceled) {
			return fmt.Sprintf("%s interrupted before step %d", abortErr.Profile, abortErr.Index+1)
		}
		if !verbose {
			return fmt.Sprintf("%s aborted: %s", abortErr.Profile, abortErr.Message)
		}
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("dir", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			app.LogFormatText + "\tTimestamped, colored status lines",
			app.LogFormatJSON + "\tOne JSON object per line",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// operationCompletions completes an operation name argument.
func operationCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := make([]string, 0, len(lifecycle.Names()))
	for _, op := range lifecycle.All(config.Default("")) {
		out = append(out, op.Name+"\t"+op.Short)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
