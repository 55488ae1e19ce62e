package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Validate checks cfg and returns an *ErrorList describing every problem, or nil.
func Validate(cfg *Config) error {
	errs := NewErrorList()

	if strings.TrimSpace(cfg.ComposeCommand) == "" {
		errs.AddValidation("compose_command", "cannot be empty", `Use "docker-compose" or "docker compose".`)
	}
	if strings.TrimSpace(cfg.Runtime) == "" {
		errs.AddValidation("runtime", "cannot be empty", `Use "docker" or a compatible CLI such as "podman".`)
	}
	if strings.TrimSpace(cfg.Service) == "" || strings.ContainsAny(cfg.Service, " \t") {
		errs.AddValidation("service", "must be a single compose service name", "Set service to the application service in your compose file.")
	}

	switch {
	case cfg.ImagePrefix == "":
		errs.AddValidation("image_prefix", "cannot be empty", "Set image_prefix or COMPOSE_PROJECT_NAME in .env.")
	case strings.ContainsAny(cfg.ImagePrefix, "*?[] \t/"):
		errs.AddValidation("image_prefix", fmt.Sprintf("%q must be a plain name prefix", cfg.ImagePrefix),
			"Leave out wildcards; the cleanup operations add them.")
	}

	if !filepath.IsLocal(cfg.AppDir) {
		errs.AddValidation("app_dir", fmt.Sprintf("%q must be a relative path inside the project", cfg.AppDir),
			"Point app_dir at the application directory, e.g. backend.")
	}

	if cfg.Settle < 0 {
		errs.AddValidation("settle", "cannot be negative", "")
	}
	if cfg.RestartSettle < 0 {
		errs.AddValidation("restart_settle", "cannot be negative", "")
	}

	if u, err := url.Parse(cfg.AppURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.AddValidation("app_url", fmt.Sprintf("%q is not an http(s) URL", cfg.AppURL), "Use e.g. http://localhost:8000.")
	}

	return errs.AsError()
}
