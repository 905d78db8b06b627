// Package config loads skilldoc configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// RenderConfig holds default rendering settings.
type RenderConfig struct {
	// Format is the default output format: markdown, html, text, or term.
	Format string `toml:"format"`

	// Width is the wrap width for text and terminal output.
	Width int `toml:"width"`

	// TermStyle is the glamour style for terminal output.
	TermStyle string `toml:"term_style"`
}

// PathsConfig holds path configuration.
type PathsConfig struct {
	// DocsDir is where project-local documents live, relative to the
	// project root unless absolute.
	DocsDir string `toml:"docs_dir"`

	// LogsDir is where log files are written.
	LogsDir string `toml:"logs_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	File   string    `toml:"file"`
}

// Config is the main configuration struct for skilldoc.
type Config struct {
	Version string        `toml:"version"`
	Render  RenderConfig  `toml:"render"`
	Paths   PathsConfig   `toml:"paths"`
	Logging LoggingConfig `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Version: "1",
		Render: RenderConfig{
			Format:    "markdown",
			Width:     80,
			TermStyle: "dark",
		},
		Paths: PathsConfig{
			DocsDir: ".skilldoc/docs",
			LogsDir: ".skilldoc/logs",
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			File:   "",
		},
	}
}

// Load loads configuration from a file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from the standard locations in a
// directory. Applies in order: defaults -> ~/.skilldoc/config.toml ->
// <dir>/.skilldoc/config.toml. Later configs override earlier ones.
func LoadFromDir(dir string) (*Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, ".skilldoc", "config.toml")
		if data, err := os.ReadFile(globalConfig); err == nil {
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		}
	}

	projectConfig := filepath.Join(dir, ".skilldoc", "config.toml")
	if data, err := os.ReadFile(projectConfig); err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing project config: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("config version is required")
	}
	switch c.Render.Format {
	case "markdown", "md", "html", "text", "txt", "plain", "term", "ansi":
	default:
		return fmt.Errorf("render format %q is not recognized", c.Render.Format)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("render width must not be negative")
	}
	if c.Paths.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	return nil
}

// DocsDir returns the absolute project docs directory path.
func (c *Config) DocsDir(baseDir string) string {
	if filepath.IsAbs(c.Paths.DocsDir) {
		return c.Paths.DocsDir
	}
	return filepath.Join(baseDir, c.Paths.DocsDir)
}

// LogFile returns the absolute log file path, or empty when file logging
// is disabled.
func (c *Config) LogFile(baseDir string) string {
	if c.Logging.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	logsDir := c.Paths.LogsDir
	if !filepath.IsAbs(logsDir) {
		logsDir = filepath.Join(baseDir, logsDir)
	}
	return filepath.Join(logsDir, c.Logging.File)
}
