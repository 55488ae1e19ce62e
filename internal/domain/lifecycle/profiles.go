package lifecycle

import (
	"fmt"
	"path"

	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/domain/sequence"
	"github.com/felixgeelhaar/devstack/internal/ui"
)

func buildSetup(cfg *config.Config) Operation {
	c := newCommands(cfg)
	runtime, compose := displayName(c.runtime), displayName(c.compose)

	profile := sequence.NewProfile(Setup,
		sequence.CheckPrerequisite{
			Command:        c.runtimeCmd("info"),
			SuccessMessage: fmt.Sprintf("✓ %s is installed and running", runtime),
			FailureMessage: fmt.Sprintf("%s is not running. Please start %s first.", runtime, runtime),
		},
		sequence.CheckPrerequisite{
			Command:        c.composeCmd("--version"),
			SuccessMessage: fmt.Sprintf("✓ %s is available", compose),
			FailureMessage: fmt.Sprintf("%s is not installed or not in PATH.", compose),
		},
		sequence.RunCommand{
			Command:     c.composeCmd("down"),
			Description: "Stopping any existing containers...",
			WarnMessage: "No existing containers to stop",
		},
		sequence.RunCommand{
			Command:     c.composeCmd("build", "--no-cache"),
			Description: "Building Docker containers...",
			Critical:    true,
		},
		sequence.RunCommand{
			Command:     c.composeCmd("up", "-d"),
			Description: "Starting containers...",
			Critical:    true,
		},
		installDependencies(c),
		clearCache(c),
	)

	return Operation{
		Name:    Setup,
		Short:   "Check prerequisites, then build and start the stack",
		Intro:   []string{"Checking prerequisites..."},
		Opening: ui.Banner{Title: "🚀 TWIG + SYMFONY STARTER", Subtitle: "Setup Script", Tone: ui.ToneInfo},
		Closing: ui.Banner{Title: "✅ SETUP COMPLETE!", Lines: readyLines(c), Tone: ui.ToneSuccess},
		Profile: profile,
	}
}

func buildFreshStart(cfg *config.Config) Operation {
	c := newCommands(cfg)

	profile := sequence.NewProfile(FreshStart,
		sequence.RunCommand{
			Command:     c.composeCmd("down", "-v", "--remove-orphans"),
			Description: "Stopping and removing containers and volumes...",
		},
		sequence.RemoveImages{
			List:        c.listImages(),
			Remove:      c.runtimeCmd("rmi", "-f"),
			Description: "Checking for project Docker images to remove...",
		},
		sequence.RunCommand{
			Command:     c.runtimeCmd("system", "prune", "-f"),
			Description: "Cleaning Docker system...",
		},
		sequence.RemoveDirIfExists{Path: cfg.VendorPath(), Label: "vendor directory"},
		sequence.RemoveDirIfExists{Path: cfg.CachePath(), Label: "cache directory"},
		sequence.RunCommand{
			Command:     c.composeCmd("build", "--no-cache"),
			Heading:     "Starting fresh setup...",
			Description: "Building Docker containers from scratch...",
		},
		sequence.RunCommand{
			Command:     c.composeCmd("up", "-d"),
			Description: "Starting containers...",
		},
		sequence.Wait{Duration: cfg.Settle, Description: "Waiting for containers to start..."},
		installDependencies(c),
		clearCache(c),
	)

	return Operation{
		Name:    FreshStart,
		Short:   "Remove containers, volumes, images and caches, then set up again",
		Intro:   []string{"Cleaning up everything..."},
		Opening: ui.Banner{Title: "🔄 FRESH START SCRIPT", Subtitle: "Complete Clean + Setup", Tone: ui.ToneInfo},
		Closing: ui.Banner{Title: "✅ FRESH START COMPLETE!", Lines: readyLines(c), Tone: ui.ToneSuccess},
		Profile: profile,
	}
}

func buildRestart(cfg *config.Config) Operation {
	c := newCommands(cfg)

	stop, start, clearing := "Stopping containers...", "Starting containers...", "Clearing cache..."
	profile := sequence.NewProfile(Restart,
		sequence.RunCommand{Command: c.composeCmd("down"), Description: stop, WarnMessage: failedMessage(stop)},
		sequence.RunCommand{Command: c.composeCmd("up", "-d"), Description: start, WarnMessage: failedMessage(start)},
		sequence.Wait{Duration: cfg.RestartSettle},
		sequence.RunCommand{Command: c.cacheClear(true), Description: clearing, WarnMessage: failedMessage(clearing)},
	)

	return Operation{
		Name:    Restart,
		Short:   "Stop and start the containers, then clear the cache",
		Opening: ui.Banner{Title: "🔄 RESTART CONTAINERS", Tone: ui.ToneInfo},
		Closing: ui.Banner{
			Title: "✅ RESTART COMPLETE!",
			Lines: []string{"🌐 Application: " + cfg.AppURL},
			Tone:  ui.ToneSuccess,
		},
		Profile: profile,
	}
}

func buildCleanup(cfg *config.Config) Operation {
	c := newCommands(cfg)

	down, prune := "Stopping and removing containers...", "Cleaning Docker system..."
	profile := sequence.NewProfile(Cleanup,
		sequence.RunCommand{Command: c.composeCmd("down", "-v"), Description: down, WarnMessage: failedMessage(down)},
		sequence.RemoveImages{
			List:        c.listImages(),
			Remove:      c.runtimeCmd("rmi"),
			Description: "Checking for project Docker images to remove...",
		},
		sequence.RunCommand{Command: c.runtimeCmd("system", "prune", "-f"), Description: prune, WarnMessage: failedMessage(prune)},
		sequence.RemoveDirIfExists{Path: cfg.VendorPath(), Label: "vendor directory"},
		sequence.RemoveDirIfExists{Path: cfg.CachePath(), Label: "cache directory"},
		sequence.RemoveDirIfExists{Path: cfg.LogPath(), Label: "log directory"},
	)

	return Operation{
		Name:    Cleanup,
		Short:   "Remove containers, volumes, project images and generated directories",
		Intro:   []string{"Starting complete cleanup..."},
		Opening: ui.Banner{Title: "🧹 CLEANUP SCRIPT", Subtitle: "Remove Everything", Tone: ui.ToneDanger},
		Closing: ui.Banner{
			Title: "✅ CLEANUP COMPLETE!",
			Lines: []string{
				"All containers, images, and caches removed.",
				"Run 'devstack setup' to start fresh.",
			},
			Tone: ui.ToneSuccess,
		},
		Profile: profile,
	}
}

func installDependencies(c commands) sequence.RunWithFallback {
	return sequence.RunWithFallback{
		Primary:     c.composerInstall(true),
		Fallback:    c.composerInstall(false),
		Description: "Installing Symfony dependencies...",
		WarnMessage: fmt.Sprintf("Could not install dependencies automatically. You may need to run '%s' manually.", c.composerInstall(false)),
	}
}

func clearCache(c commands) sequence.RunWithFallback {
	return sequence.RunWithFallback{
		Primary:     c.cacheClear(true),
		Fallback:    c.cacheClear(false),
		Description: "Clearing Symfony cache...",
		WarnMessage: "Could not clear cache automatically.",
	}
}

// readyLines is the body of the banner shown once the stack is up.
func readyLines(c commands) []string {
	appDir := path.Clean(c.cfg.AppDir)
	row := func(cmd, what string) string {
		return fmt.Sprintf("• %-24s - %s", cmd, what)
	}
	return []string{
		"🌐 Backend:  " + c.cfg.AppURL,
		"",
		"📁 Templates: " + appDir + "/templates/",
		"🎮 Controllers: " + appDir + "/src/Controller/",
		"",
		"Commands:",
		row(c.composeCmd("logs", "-f").String(), "View container logs"),
		row(c.composeCmd("down").String(), "Stop containers"),
		row("devstack restart", "Restart containers"),
		row("devstack cleanup", "Clean up everything"),
	}
}
