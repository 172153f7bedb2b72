package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/apodwall/internal/apod"
	"github.com/five82/apodwall/internal/logging"
	"github.com/five82/apodwall/internal/wallpaper"
)

const configEnv = "APODWALL_CONFIG"

// commandContext carries the persistent flags and the collaborators a command
// needs. Zero collaborators mean production defaults.
type commandContext struct {
	configFlag string
	dataDir    string
	logLevel   string
	logFormat  string

	setter  wallpaper.Setter
	fetcher apod.Fetcher

	logger *slog.Logger
}

func (c *commandContext) configPath() string {
	if path := strings.TrimSpace(c.configFlag); path != "" {
		return path
	}
	return strings.TrimSpace(os.Getenv(configEnv))
}

func (c *commandContext) initLogger(w io.Writer) error {
	logger, err := logging.New(logging.Options{
		Level:  c.logLevel,
		Format: c.logFormat,
		Output: w,
	})
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}
