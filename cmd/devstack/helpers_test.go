package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/felixgeelhaar/devstack/internal/app"
)

// executeCommand runs the root command with args and returns its output.
// Global flag variables are reset first because cobra only writes flags
// that appear on the command line.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, projDir, verbose, quiet, dryRun, logFormat = "", "", false, false, false, app.LogFormatText

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute(context.Background())
	return out.String(), err
}
