package lifecycle

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/ports"
)

// commands renders the external commands an operation needs from the config.
type commands struct {
	cfg     *config.Config
	compose ports.Command
	runtime ports.Command
}

func newCommands(cfg *config.Config) commands {
	return commands{
		cfg:     cfg,
		compose: ports.Split(cfg.ComposeCommand),
		runtime: ports.Split(cfg.Runtime),
	}
}

func (c commands) composeCmd(args ...string) ports.Command {
	return c.compose.With(args...)
}

func (c commands) runtimeCmd(args ...string) ports.Command {
	return c.runtime.With(args...)
}

// exec runs args inside the application service. Without a TTY the compose
// tool needs -T; some versions reject it, hence the two variants.
func (c commands) exec(noTTY bool, args ...string) ports.Command {
	base := []string{"exec"}
	if noTTY {
		base = append(base, "-T")
	}
	base = append(base, c.cfg.Service)
	return c.compose.With(append(base, args...)...)
}

func (c commands) composerInstall(noTTY bool) ports.Command {
	return c.exec(noTTY, "composer", "install")
}

func (c commands) cacheClear(noTTY bool) ports.Command {
	return c.exec(noTTY, "php", "bin/console", "cache:clear")
}

func (c commands) listImages() ports.Command {
	return c.runtimeCmd("images", "-q", c.cfg.ImageFilter())
}

// displayName turns a command such as "docker-compose" into "Docker Compose".
func displayName(cmd ports.Command) string {
	words := append([]string{cmd.Name}, cmd.Args...)
	return Title(strings.Join(words, " "))
}

func failedMessage(description string) string {
	return fmt.Sprintf("%s failed", strings.TrimSuffix(description, "..."))
}
