// Package app wires the adapters to the lifecycle operations and renders
// their progress for the operator.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/devstack/internal/adapters/clock"
	"github.com/felixgeelhaar/devstack/internal/adapters/command"
	"github.com/felixgeelhaar/devstack/internal/adapters/filesystem"
	"github.com/felixgeelhaar/devstack/internal/adapters/logging"
	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/domain/lifecycle"
	"github.com/felixgeelhaar/devstack/internal/domain/sequence"
	"github.com/felixgeelhaar/devstack/internal/ports"
	"github.com/felixgeelhaar/devstack/internal/ui"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Options are the settings taken from the command line.
type Options struct {
	// Dir is the project root. Empty means the working directory.
	Dir string
	// ConfigPath is an explicit configuration file.
	ConfigPath string
	DryRun     bool
	Verbose    bool
	// Quiet drops status lines and warnings. Errors, command output and
	// banners are still shown.
	Quiet     bool
	LogFormat string
}

// App runs lifecycle operations for one project.
type App struct {
	opts   Options
	cfg    *config.Config
	out    io.Writer
	styles ui.Styles

	commands ports.CommandRunner
	fs       ports.FileSystem
	sleeper  ports.Sleeper
	logger   ports.Logger
}

// New loads the project configuration and creates an App writing to out.
func New(out io.Writer, opts Options) (*App, error) {
	if opts.LogFormat == "" {
		opts.LogFormat = LogFormatText
	}
	if opts.LogFormat != LogFormatText && opts.LogFormat != LogFormatJSON {
		return nil, config.NewValidationFailedError("log-format", fmt.Sprintf("unknown format %q", opts.LogFormat)).
			WithSuggestion("Use --log-format text or --log-format json.")
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		dir = wd
	}

	cfg, err := config.NewLoader().Load(dir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := ports.LevelInfo
	if opts.Verbose {
		level = ports.LevelDebug
	}

	a := &App{
		opts:   opts,
		cfg:    cfg,
		out:    out,
		styles: ui.NewStyles(lipgloss.NewRenderer(out)),
	}
	console := logging.NewConsoleLogger(
		logging.WithOutput(out),
		logging.WithLevel(level),
		logging.WithJSONFormat(opts.LogFormat == LogFormatJSON),
	)
	a.logger = console
	if opts.Quiet {
		a.logger = logging.NewNopLogger(logging.ErrorsTo(console))
	}

	if opts.DryRun {
		a.commands = command.NewDryRunRunner(out)
		a.fs = filesystem.NewDryRunFileSystem(out)
		a.sleeper = clock.NopSleeper{}
	} else {
		a.commands = command.NewRealRunner(command.WithDir(cfg.ProjectDir))
		a.fs = filesystem.NewRealFileSystem()
		a.sleeper = clock.NewRealSleeper()
	}
	return a, nil
}

// WithCommandRunner replaces the command runner.
func (a *App) WithCommandRunner(r ports.CommandRunner) *App {
	a.commands = r
	return a
}

// WithFileSystem replaces the file system.
func (a *App) WithFileSystem(fs ports.FileSystem) *App {
	a.fs = fs
	return a
}

// WithSleeper replaces the sleeper.
func (a *App) WithSleeper(s ports.Sleeper) *App {
	a.sleeper = s
	return a
}

// WithLogger replaces the logger.
func (a *App) WithLogger(l ports.Logger) *App {
	a.logger = l
	return a
}

// Config returns the resolved project configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Run executes the named operation. Warnings do not produce an error; the
// returned error is non-nil only when the operation was aborted.
func (a *App) Run(ctx context.Context, name string) (sequence.Report, error) {
	op, err := lifecycle.Build(name, a.cfg)
	if err != nil {
		return sequence.Report{}, err
	}

	logger := a.logger.With(ports.F("run_id", uuid.NewString()), ports.F("operation", op.Name))
	logger.Debug(ctx, "configuration resolved",
		ports.F("project_dir", a.cfg.ProjectDir),
		ports.F("config", sourceOrDefault(a.cfg.Source)),
		ports.F("image_prefix", a.cfg.ImagePrefix),
		ports.F("image_prefix_source", a.cfg.PrefixSource),
	)

	a.banner(op.Opening)
	if a.opts.DryRun {
		logger.Info(ctx, "Dry run: commands are printed, not executed")
	}
	for _, line := range op.Intro {
		logger.Info(ctx, line)
	}

	seq := sequence.NewSequencer(a.commands, a.fs, a.sleeper, logger)
	report, err := seq.Execute(ctx, op.Profile)

	summary := Summary(op.Name, report)
	if err != nil {
		logger.Debug(ctx, summary, ports.F("state", string(seq.State())))
		return report, err
	}

	if a.opts.LogFormat == LogFormatJSON {
		logger.Info(ctx, summary, ports.F("steps", report.Len()), ports.F("warnings", report.Warnings()))
	} else {
		closing := op.Closing
		closing.Lines = append(append([]string{}, closing.Lines...), "", summary)
		a.banner(closing)
	}
	logger.Debug(ctx, "run finished", ports.F("state", string(seq.State())), ports.F("duration", report.Duration().String()))
	return report, nil
}

// Plan prints the steps of the named operation without running them.
func (a *App) Plan(name string) error {
	op, err := lifecycle.Build(name, a.cfg)
	if err != nil {
		return err
	}

	a.printf("%s\n", a.styles.BannerTitle.Render(lifecycle.Title(op.Name)+" plan"))
	a.printf("%s\n\n", a.styles.Muted.Render(fmt.Sprintf("project %s, config %s", a.cfg.ProjectDir, sourceOrDefault(a.cfg.Source))))
	for i, step := range op.Profile.Steps() {
		kind := fmt.Sprintf("%-18s", step.Kind())
		a.printf("  %2d. %s %s\n", i+1, a.styles.Info.Render(kind), step.Describe())
	}
	a.printf("\n%d steps\n", op.Profile.Len())
	return nil
}

func (a *App) banner(b ui.Banner) {
	if a.opts.LogFormat == LogFormatJSON {
		return
	}
	a.printf("\n%s\n\n", a.styles.Render(b))
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// Summary renders the one-line result of a run, e.g. "Setup: 7 steps, 1 warning".
func Summary(name string, r sequence.Report) string {
	s := fmt.Sprintf("%s: %s, %s", lifecycle.Title(name), plural(r.Len(), "step"), plural(r.Warnings(), "warning"))
	if r.Aborted() {
		s += ", aborted"
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func sourceOrDefault(source string) string {
	if source == "" {
		return "built-in defaults"
	}
	return source
}
