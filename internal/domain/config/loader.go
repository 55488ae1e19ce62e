package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFileNames are searched, in order, in the project directory.
var DefaultFileNames = []string{"devstack.yaml", "devstack.yml", "devstack.toml"}

// fileConfig is the on-disk shape. Empty values leave the default in place.
type fileConfig struct {
	ComposeCommand string `yaml:"compose_command" toml:"compose_command"`
	Runtime        string `yaml:"runtime" toml:"runtime"`
	Service        string `yaml:"service" toml:"service"`
	ImagePrefix    string `yaml:"image_prefix" toml:"image_prefix"`
	AppDir         string `yaml:"app_dir" toml:"app_dir"`
	Settle         string `yaml:"settle" toml:"settle"`
	RestartSettle  string `yaml:"restart_settle" toml:"restart_settle"`
	AppURL         string `yaml:"app_url" toml:"app_url"`
}

// Loader loads configuration from the filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves the configuration for the project rooted at dir.
//
// When path is empty the DefaultFileNames are tried in dir and a project
// without any of them runs on defaults. An explicit path must exist.
// If the file does not set image_prefix, the compose project name from
// dir/.env is used instead.
func (l *Loader) Load(dir, path string) (*Config, error) {
	cfg := Default(dir)

	if path == "" {
		path = findDefault(dir)
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewConfigNotFoundError(path)
	}

	var raw fileConfig
	if path != "" {
		if err := l.decodeFile(path, &raw); err != nil {
			return nil, err
		}
		cfg.Source = path
	}

	if err := apply(cfg, raw); err != nil {
		return nil, err
	}

	if raw.ImagePrefix == "" {
		if name, ok := ComposeProjectName(filepath.Join(dir, ".env")); ok {
			cfg.ImagePrefix = name
			cfg.PrefixSource = ".env"
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) decodeFile(path string, raw *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewConfigNotFoundError(path)
		}
		return NewFilePermissionError(path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(raw); err != nil && !errors.Is(err, io.EOF) {
			return NewYAMLParseError(path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(raw); err != nil {
			return NewConfigParseError(path, err)
		}
	default:
		return NewUnsupportedFormatError(path)
	}
	return nil
}

func findDefault(dir string) string {
	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func apply(cfg *Config, raw fileConfig) error {
	setString(&cfg.ComposeCommand, raw.ComposeCommand)
	setString(&cfg.Runtime, raw.Runtime)
	setString(&cfg.Service, raw.Service)
	setString(&cfg.AppDir, raw.AppDir)
	setString(&cfg.AppURL, raw.AppURL)
	if raw.ImagePrefix != "" {
		cfg.ImagePrefix = strings.TrimSpace(raw.ImagePrefix)
		cfg.PrefixSource = "config"
	}

	errs := NewErrorList()
	if d, err := parseDuration(raw.Settle); err != nil {
		errs.AddValidation("settle", err.Error(), `Use a Go duration such as "5s" or "1m30s".`)
	} else if raw.Settle != "" {
		cfg.Settle = d
	}
	if d, err := parseDuration(raw.RestartSettle); err != nil {
		errs.AddValidation("restart_settle", err.Error(), `Use a Go duration such as "3s".`)
	} else if raw.RestartSettle != "" {
		cfg.RestartSettle = d
	}
	return errs.AsError()
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
