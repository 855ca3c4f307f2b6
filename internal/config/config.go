// Package config loads, validates and persists the vlist configuration file
// and owns the process-wide logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the configuration schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of schema versions this build can read.
const supportedVersions = "^1.0.0"

const configFileName = "config.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root of config.yaml.
type Config struct {
	Version string        `yaml:"version" toml:"version"`
	List    ListConfig    `yaml:"list" toml:"list"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	TUI     TUIConfig     `yaml:"tui" toml:"tui"`

	configPath string
}

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

// TUIConfig configures the interactive browser.
type TUIConfig struct {
	ItemCount     int           `yaml:"item_count" toml:"item_count"`
	RowHeight     int           `yaml:"row_height" toml:"row_height"`
	RefreshDelay  time.Duration `yaml:"refresh_delay" toml:"refresh_delay"`
	ShowScrollbar bool          `yaml:"show_scrollbar" toml:"show_scrollbar"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		List:    DefaultListConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		TUI: TUIConfig{
			ItemCount:     1000,
			RowHeight:     1,
			RefreshDelay:  time.Second,
			ShowScrollbar: true,
		},
	}
}

// New returns the defaults merged with the global config file, when present,
// followed by environment overrides. Read errors are ignored so the CLI keeps
// working with a broken file; `vlist config validate` reports them.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err != nil {
		cfg.applyEnv()
		return cfg
	}
	cfg.configPath = filepath.Join(dir, configFileName)

	if _, statErr := os.Stat(cfg.configPath); statErr == nil {
		if loaded, loadErr := Load(cfg.configPath); loadErr == nil {
			cfg = loaded
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.configPath = path
	return cfg, nil
}

// Save writes the configuration to its config path, creating the directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		c.configPath = filepath.Join(dir, configFileName)
	}
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// ConfigPath returns the file the configuration was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Validate checks the schema version and every section.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if err := c.List.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.TUI.Validate()
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: version %q: %w", ErrInvalidConfig, version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: version %s is not supported (want %s)", ErrInvalidConfig, v, supportedVersions)
	}
	return nil
}

// Validate checks the logging section.
func (lc LoggingConfig) Validate() error {
	switch lc.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, lc.Level)
	}
	switch lc.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, lc.Format)
	}
	return nil
}

// Validate checks the tui section.
func (tc TUIConfig) Validate() error {
	switch {
	case tc.ItemCount < 0:
		return fmt.Errorf("%w: tui.item_count must be non-negative", ErrInvalidConfig)
	case tc.RowHeight < 1:
		return fmt.Errorf("%w: tui.row_height must be at least 1", ErrInvalidConfig)
	case tc.RefreshDelay < 0:
		return fmt.Errorf("%w: tui.refresh_delay must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// applyEnv applies VLIST_LOG_LEVEL and VLIST_LOG_FORMAT.
func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Logging.Format = format
	}
}
