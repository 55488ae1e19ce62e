//go:build e2e && !windows

package framework

import (
	"slices"
	"strings"
	"testing"
)

// AssertSuccess asserts that the command succeeded.
func AssertSuccess(t *testing.T, r *Result) {
	t.Helper()
	if !r.Success() {
		t.Errorf("Expected command to succeed, got exit code %d\nStdout: %s\nStderr: %s",
			r.ExitCode, r.Stdout, r.Stderr)
	}
}

// AssertExitCode asserts the expected exit code.
func AssertExitCode(t *testing.T, r *Result, expected int) {
	t.Helper()
	if r.ExitCode != expected {
		t.Errorf("Expected exit code %d, got %d\nStdout: %s\nStderr: %s",
			expected, r.ExitCode, r.Stdout, r.Stderr)
	}
}

// AssertStdoutContains asserts that stdout contains every expected substring.
func AssertStdoutContains(t *testing.T, r *Result, expected ...string) {
	t.Helper()
	for _, s := range expected {
		if !strings.Contains(r.Stdout, s) {
			t.Errorf("Expected stdout to contain %q, but got:\n%s", s, r.Stdout)
		}
	}
}

// AssertStdoutNotContains asserts that stdout does not contain the unexpected substring.
func AssertStdoutNotContains(t *testing.T, r *Result, unexpected string) {
	t.Helper()
	if strings.Contains(r.Stdout, unexpected) {
		t.Errorf("Expected stdout to NOT contain %q, but got:\n%s", unexpected, r.Stdout)
	}
}

// AssertStderrContains asserts that stderr contains the expected substring.
func AssertStderrContains(t *testing.T, r *Result, expected string) {
	t.Helper()
	if !strings.Contains(r.Stderr, expected) {
		t.Errorf("Expected stderr to contain %q, but got:\n%s", expected, r.Stderr)
	}
}

// AssertCalls asserts the exact sequence of stub tool invocations.
func AssertCalls(t *testing.T, env *Environment, expected ...string) {
	t.Helper()
	got := env.Calls()
	if !slices.Equal(got, expected) {
		t.Errorf("Expected calls:\n  %s\ngot:\n  %s",
			strings.Join(expected, "\n  "), strings.Join(got, "\n  "))
	}
}

// AssertPathExists asserts that a path exists below the project directory.
func AssertPathExists(t *testing.T, env *Environment, path string) {
	t.Helper()
	if !env.Exists(path) {
		t.Errorf("Expected %s to exist", path)
	}
}

// AssertPathNotExists asserts that a path does not exist below the project directory.
func AssertPathNotExists(t *testing.T, env *Environment, path string) {
	t.Helper()
	if env.Exists(path) {
		t.Errorf("Expected %s to NOT exist", path)
	}
}
