package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/apodwall/internal/faults"
	"github.com/five82/apodwall/internal/wallpaper"
)

// Config is the user-edited configuration read once per run.
type Config struct {
	APIKey           string
	DefaultWallpaper string
	Style            wallpaper.Style
}

// fileFormat mirrors the JSON on disk. Pointers tell a missing key apart from
// an empty value.
type fileFormat struct {
	APIKey           *string `json:"api_key"`
	DefaultWallpaper *string `json:"default_wallpaper"`
	Style            *string `json:"style"`
}

const (
	defaultConfigPath = "~/.config/apodwall/config.json"
	defaultDataDir    = "~/.local/share/apodwall"
	apiKeyHint        = "https://api.nasa.gov/"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// ResolvePath expands path, or the default path when empty, to an absolute path.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// DefaultDataDir returns the directory that holds the downloaded image, the
// metadata artifact and the run journal.
func DefaultDataDir() string {
	return defaultDataDir
}

// ResolveDataDir expands dir, or the default data directory when empty.
func ResolveDataDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return expandPath(defaultDataDir)
	}
	return expandPath(dir)
}

// LoadOrInit reads the configuration at path. A missing file is created with
// empty placeholders and reported as faults.ErrConfigMissing so the caller
// stops before using empty credentials.
func LoadOrInit(path string) (Config, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return Config{}, faults.Wrap(faults.ErrConfigInvalid, "config", "resolve path", "", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, initialize(resolved)
		}
		return Config{}, faults.Wrap(faults.ErrConfigInvalid, "config", "read", resolved, err)
	}

	var raw fileFormat
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, faults.Wrap(faults.ErrConfigInvalid, "config", "parse", resolved, err)
	}
	return fromFile(raw)
}

// Save writes cfg to path as indented JSON, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return faults.Wrap(faults.ErrIO, "config", "resolve path", "", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return faults.Wrap(faults.ErrIO, "config", "create dir", "", err)
	}

	apiKey, wall, style := cfg.APIKey, cfg.DefaultWallpaper, string(cfg.Style)
	payload, err := encode(fileFormat{APIKey: &apiKey, DefaultWallpaper: &wall, Style: &style})
	if err != nil {
		return faults.Wrap(faults.ErrIO, "config", "marshal", "", err)
	}
	if err := os.WriteFile(resolved, payload, 0o600); err != nil {
		return faults.Wrap(faults.ErrIO, "config", "write", resolved, err)
	}
	return nil
}

func initialize(resolved string) error {
	if err := Save(resolved, Config{}); err != nil {
		return faults.Wrap(faults.ErrConfigInvalid, "config", "create", resolved, err)
	}
	msg := fmt.Sprintf(
		"created %s; fill in api_key (get one at %s), default_wallpaper and style (one of %s), then run again",
		resolved, apiKeyHint, strings.Join(wallpaper.StyleNames(), ", "),
	)
	return faults.Wrap(faults.ErrConfigMissing, "config", "", msg, nil)
}

func fromFile(raw fileFormat) (Config, error) {
	var missing []string
	if raw.APIKey == nil {
		missing = append(missing, "api_key")
	}
	if raw.DefaultWallpaper == nil {
		missing = append(missing, "default_wallpaper")
	}
	if raw.Style == nil {
		missing = append(missing, "style")
	}
	if len(missing) > 0 {
		return Config{}, faults.Wrap(faults.ErrConfigInvalid, "config", "validate", "missing keys: "+strings.Join(missing, ", "), nil)
	}

	cfg := Config{
		APIKey:           strings.TrimSpace(*raw.APIKey),
		DefaultWallpaper: strings.TrimSpace(*raw.DefaultWallpaper),
	}

	var empty []string
	if cfg.APIKey == "" {
		empty = append(empty, "api_key")
	}
	if cfg.DefaultWallpaper == "" {
		empty = append(empty, "default_wallpaper")
	}
	if len(empty) > 0 {
		return Config{}, faults.Wrap(faults.ErrConfigInvalid, "config", "validate",
			fmt.Sprintf("fill in %s (api keys: %s)", strings.Join(empty, ", "), apiKeyHint), nil)
	}

	style, err := wallpaper.ParseStyle(*raw.Style)
	if err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	cfg.Style = style

	// Relative paths stay as written; the setter resolves them against the
	// working directory.
	if strings.HasPrefix(cfg.DefaultWallpaper, "~") {
		wall, err := expandPath(cfg.DefaultWallpaper)
		if err != nil {
			return Config{}, faults.Wrap(faults.ErrConfigInvalid, "config", "default_wallpaper", cfg.DefaultWallpaper, err)
		}
		cfg.DefaultWallpaper = wall
	}

	return cfg, nil
}

func encode(v fileFormat) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
