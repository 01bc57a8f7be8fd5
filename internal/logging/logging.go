// Package logging builds the application's charmbracelet/log logger from
// configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// New creates a logger writing to w at the configured level.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
		Level:           level,
	}), nil
}

// NewFile creates a logger appending to the configured log file, creating
// its directory if needed. The returned closer releases the file.
// An empty path discards all output.
func NewFile(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		logger, err := New(cfg, io.Discard)
		return logger, io.NopCloser(nil), err
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(cfg, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
