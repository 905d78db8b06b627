package cmd

import (
	"io"
	"log/slog"

	"github.com/sdd-stack/skilldoc/internal/config"
	"github.com/sdd-stack/skilldoc/internal/library"
	"github.com/sdd-stack/skilldoc/internal/logging"
)

// loadConfig loads merged configuration for the resolved working
// directory. Configuration errors fall back to defaults; a doc tool should
// keep working in a directory with a broken config file.
func loadConfig() *config.Config {
	cfg, err := config.LoadFromDir(baseDir())
	if err != nil {
		return config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return config.Default()
	}
	return cfg
}

// newLogger builds a logger from config, honoring the --verbose flag.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	if verbose {
		return logging.NewWithLevel(slog.LevelDebug), nil
	}
	logger, closer, err := logging.NewFromConfig(cfg, baseDir())
	if err != nil {
		return logging.NewDefault(), nil
	}
	return logger, closer
}

// newLibrary builds the document library for the resolved working
// directory.
func newLibrary() *library.Library {
	cfg := loadConfig()
	lib := library.New(cfg.DocsDir(baseDir()))
	return lib
}
