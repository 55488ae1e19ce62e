// Package config holds the project settings that parameterize the lifecycle
// operations, and loads them from devstack.yaml or devstack.toml.
package config

import (
	"path/filepath"
	"time"
)

// Defaults match the stack the tool was first written for.
const (
	DefaultComposeCommand = "docker-compose"
	DefaultRuntime        = "docker"
	DefaultService        = "backend"
	DefaultImagePrefix    = "twigs"
	DefaultAppDir         = "backend"
	DefaultSettle         = 5 * time.Second
	DefaultRestartSettle  = 3 * time.Second
	DefaultAppURL         = "http://localhost:8000"
)

// Directories below the application directory that the reset operations clear.
const (
	VendorDir = "vendor"
	CacheDir  = "var/cache"
	LogDir    = "var/log"
)

// Config is the resolved configuration for one project.
type Config struct {
	// ProjectDir is the directory containing the compose file. Relative
	// directory settings resolve against it.
	ProjectDir string

	ComposeCommand string
	Runtime        string
	Service        string
	ImagePrefix    string
	AppDir         string
	Settle         time.Duration
	RestartSettle  time.Duration
	AppURL         string

	// Source is the file the settings were read from, empty for defaults.
	Source string
	// PrefixSource records where ImagePrefix came from: "default", "config" or ".env".
	PrefixSource string
}

// Default returns the built-in configuration for dir.
func Default(dir string) *Config {
	return &Config{
		ProjectDir:     dir,
		ComposeCommand: DefaultComposeCommand,
		Runtime:        DefaultRuntime,
		Service:        DefaultService,
		ImagePrefix:    DefaultImagePrefix,
		AppDir:         DefaultAppDir,
		Settle:         DefaultSettle,
		RestartSettle:  DefaultRestartSettle,
		AppURL:         DefaultAppURL,
		PrefixSource:   "default",
	}
}

// AppPath joins elem onto the application directory.
func (c *Config) AppPath(elem ...string) string {
	parts := append([]string{c.ProjectDir, c.AppDir}, elem...)
	return filepath.Join(parts...)
}

// VendorPath returns the dependency directory.
func (c *Config) VendorPath() string { return c.AppPath(VendorDir) }

// CachePath returns the framework cache directory.
func (c *Config) CachePath() string { return c.AppPath(filepath.FromSlash(CacheDir)) }

// LogPath returns the framework log directory.
func (c *Config) LogPath() string { return c.AppPath(filepath.FromSlash(LogDir)) }

// ImageFilter returns the reference filter passed to the image listing.
func (c *Config) ImageFilter() string {
	return c.ImagePrefix + "*"
}
