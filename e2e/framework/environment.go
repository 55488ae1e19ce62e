//go:build e2e && !windows

// Package framework provides the E2E test infrastructure for devstack.
//
// Each Environment is a temporary project directory plus a bin directory of
// stub executables (docker, docker-compose) that append their argv to a
// call log and exit with a scripted status. The devstack binary runs with
// only that bin directory and the system shell on PATH.
package framework

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// Environment represents an isolated test environment for E2E tests.
type Environment struct {
	t          *testing.T
	rootDir    string
	projectDir string
	binDir     string
	callLog    string
	binaryPath string
}

var (
	buildOnce  sync.Once
	binaryPath string
	buildErr   error
)

// findProjectRoot locates the module root directory.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// buildBinary builds the devstack binary once per test run.
func buildBinary(t *testing.T) (string, error) {
	buildOnce.Do(func() {
		root, err := findProjectRoot()
		if err != nil {
			buildErr = err
			return
		}

		binaryPath = filepath.Join(os.TempDir(), "devstack-e2e-test")

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/devstack")
		cmd.Dir = root

		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			buildErr = err
			t.Logf("Build stderr: %s", stderr.String())
		}
	})

	return binaryPath, buildErr
}

// NewEnvironment creates a new isolated test environment with default
// stubs: every docker and docker-compose invocation succeeds silently.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	binary, err := buildBinary(t)
	if err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}

	rootDir := t.TempDir()
	env := &Environment{
		t:          t,
		rootDir:    rootDir,
		projectDir: filepath.Join(rootDir, "project"),
		binDir:     filepath.Join(rootDir, "bin"),
		callLog:    filepath.Join(rootDir, "calls.log"),
		binaryPath: binary,
	}

	for _, dir := range []string{env.projectDir, env.binDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	env.StubTool("docker")
	env.StubTool("docker-compose")
	return env
}

// Behavior scripts the response of a stub tool to invocations whose
// arguments start with Args.
type Behavior struct {
	Args   string
	Stdout string
	Exit   int
}

// StubTool (re)writes an executable named name in the stub bin directory.
// Invocations not matched by any behavior exit 0 with no output.
func (e *Environment) StubTool(name string, behaviors ...Behavior) {
	e.t.Helper()

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "echo \"%s $*\" >> %q\n", name, e.callLog)
	b.WriteString("case \"$*\" in\n")
	for _, bh := range behaviors {
		fmt.Fprintf(&b, "  %q*)\n", bh.Args)
		if bh.Stdout != "" {
			fmt.Fprintf(&b, "    printf '%%s\\n' %q\n", bh.Stdout)
		}
		fmt.Fprintf(&b, "    exit %d;;\n", bh.Exit)
	}
	b.WriteString("esac\nexit 0\n")

	path := filepath.Join(e.binDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o755); err != nil {
		e.t.Fatalf("Failed to write stub %s: %v", name, err)
	}
}

// RemoveTool deletes a stub so the executable is not found on PATH.
func (e *Environment) RemoveTool(name string) {
	e.t.Helper()
	if err := os.Remove(filepath.Join(e.binDir, name)); err != nil {
		e.t.Fatalf("Failed to remove stub %s: %v", name, err)
	}
}

// Calls returns every stub invocation in order, e.g. "docker-compose up -d".
func (e *Environment) Calls() []string {
	e.t.Helper()

	content, err := os.ReadFile(e.callLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		e.t.Fatalf("Failed to read call log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

// ProjectDir returns the path to the project directory.
func (e *Environment) ProjectDir() string {
	return e.projectDir
}

// BinDir returns the directory holding the stub tools.
func (e *Environment) BinDir() string {
	return e.binDir
}

// BinaryPath returns the path to the built binary.
func (e *Environment) BinaryPath() string {
	return e.binaryPath
}

// WriteFile writes content to a file below the project directory.
func (e *Environment) WriteFile(path, content string) {
	e.t.Helper()

	fullPath := filepath.Join(e.projectDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// WriteConfig writes devstack.yaml into the project directory.
func (e *Environment) WriteConfig(content string) {
	e.t.Helper()
	e.WriteFile("devstack.yaml", content)
}

// MakeDirs creates directories below the project directory, each holding one file.
func (e *Environment) MakeDirs(paths ...string) {
	e.t.Helper()
	for _, p := range paths {
		e.WriteFile(filepath.Join(p, ".keep"), "")
	}
}

// Exists checks if a path exists below the project directory.
func (e *Environment) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(e.projectDir, path))
	return err == nil
}
