// Package lifecycle defines the four environment operations: setup,
// fresh-start, restart and cleanup. Each is a fixed sequence.Profile built
// from the project configuration, plus the banners printed around it.
package lifecycle

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/domain/sequence"
	"github.com/felixgeelhaar/devstack/internal/ui"
)

// Operation names.
const (
	Setup      = "setup"
	FreshStart = "fresh-start"
	Restart    = "restart"
	Cleanup    = "cleanup"
)

// Operation is a runnable lifecycle operation.
type Operation struct {
	Name string
	// Short is a one-line description for help output.
	Short string
	// Intro lines are logged after the opening banner, before the first step.
	Intro   []string
	Opening ui.Banner
	// Closing is printed only when the profile runs to completion.
	Closing ui.Banner
	Profile sequence.Profile
}

type builder func(cfg *config.Config) Operation

var builders = map[string]builder{
	Setup:      buildSetup,
	FreshStart: buildFreshStart,
	Restart:    buildRestart,
	Cleanup:    buildCleanup,
}

// Names returns the operation names in the order they are usually run.
func Names() []string {
	return []string{Setup, FreshStart, Restart, Cleanup}
}

// IsValid reports whether name is a known operation.
func IsValid(name string) bool {
	return slices.Contains(Names(), name)
}

// Build returns the named operation for cfg.
func Build(name string, cfg *config.Config) (Operation, error) {
	b, ok := builders[name]
	if !ok {
		return Operation{}, config.NewProfileNotFoundError(name, Names())
	}
	return b(cfg), nil
}

// All builds every operation for cfg, in Names order.
func All(cfg *config.Config) []Operation {
	ops := make([]Operation, 0, len(builders))
	for _, name := range Names() {
		ops = append(ops, builders[name](cfg))
	}
	return ops
}

// Title returns the display form of an operation name, e.g. "Fresh Start".
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}
