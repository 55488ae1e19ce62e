package config

import (
	"strings"

	"gopkg.in/ini.v1"
)

// ComposeProjectNameKey is the compose variable that names the project, and
// so prefixes every image compose builds.
const ComposeProjectNameKey = "COMPOSE_PROJECT_NAME"

// ComposeProjectName reads COMPOSE_PROJECT_NAME from a compose .env file.
// It reports false when the file is missing, unreadable, or has no usable value.
func ComposeProjectName(path string) (string, bool) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
	}, path)
	if err != nil {
		return "", false
	}

	name := normalizeProjectName(cfg.Section("").Key(ComposeProjectNameKey).String())
	return name, name != ""
}

// normalizeProjectName applies compose's project name rules: lowercase,
// with only letters, digits, dashes and underscores kept.
func normalizeProjectName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, s)
}
