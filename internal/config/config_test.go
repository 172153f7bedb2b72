package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/apodwall/internal/faults"
	"github.com/five82/apodwall/internal/wallpaper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadOrInit_MissingFileCreatesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	_, err := LoadOrInit(path)
	if !errors.Is(err, faults.ErrConfigMissing) {
		t.Fatalf("LoadOrInit error = %v, want ErrConfigMissing", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("LoadOrInit error = %q, want it to name %q", err.Error(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var created map[string]string
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("Unmarshal created config: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created config has %d keys, want 3: %v", len(created), created)
	}
	for _, key := range []string{"api_key", "default_wallpaper", "style"} {
		value, ok := created[key]
		if !ok || value != "" {
			t.Fatalf("created[%q] = %q (present=%v), want empty string", key, value, ok)
		}
	}

	// the template itself is not usable yet
	_, err = LoadOrInit(path)
	if !errors.Is(err, faults.ErrConfigInvalid) {
		t.Fatalf("second LoadOrInit error = %v, want ErrConfigInvalid", err)
	}
}

func TestLoadOrInit_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := LoadOrInit("")
	if !errors.Is(err, faults.ErrConfigMissing) {
		t.Fatalf("LoadOrInit error = %v, want ErrConfigMissing", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "apodwall", "config.json")); err != nil {
		t.Fatalf("Stat default config: %v", err)
	}
}

func TestLoadOrInit_ParsesAndTrims(t *testing.T) {
	path := writeConfig(t, `{
    "api_key": "  ABC123 ",
    "default_wallpaper": "/home/u/default.jpg",
    "style": " Fill "
}`)
	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit returned error: %v", err)
	}
	if cfg.APIKey != "ABC123" {
		t.Fatalf("APIKey = %q, want ABC123", cfg.APIKey)
	}
	want, _ := filepath.Abs("/home/u/default.jpg")
	if cfg.DefaultWallpaper != want {
		t.Fatalf("DefaultWallpaper = %q, want %q", cfg.DefaultWallpaper, want)
	}
	if cfg.Style != wallpaper.StyleFill {
		t.Fatalf("Style = %q, want fill", cfg.Style)
	}
}

func TestLoadOrInit_RelativeWallpaperKeptAsWritten(t *testing.T) {
	path := writeConfig(t, `{"api_key":"k","default_wallpaper":" walls/default.png ","style":"fit"}`)
	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit returned error: %v", err)
	}
	if cfg.DefaultWallpaper != "walls/default.png" {
		t.Fatalf("DefaultWallpaper = %q, want %q", cfg.DefaultWallpaper, "walls/default.png")
	}
}

func TestLoadOrInit_TildeWallpaperExpands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, `{"api_key":"k","default_wallpaper":"~/Pictures/d.jpg","style":"center"}`)
	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit returned error: %v", err)
	}
	if cfg.DefaultWallpaper != filepath.Join(home, "Pictures", "d.jpg") {
		t.Fatalf("DefaultWallpaper = %q, want it under HOME", cfg.DefaultWallpaper)
	}
}

func TestLoadOrInit_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
		hint string
	}{
		{"malformed json", `{"api_key": `, faults.ErrConfigInvalid, "parse"},
		{"missing key", `{"api_key":"k","style":"fill"}`, faults.ErrConfigInvalid, "default_wallpaper"},
		{"empty api key", `{"api_key":"","default_wallpaper":"/d.jpg","style":"fill"}`, faults.ErrConfigInvalid, "fill in api_key"},
		{"unknown style", `{"api_key":"k","default_wallpaper":"/d.jpg","style":"zoom"}`, faults.ErrInvalidStyle, "zoom"},
		{"empty style", `{"api_key":"k","default_wallpaper":"/d.jpg","style":""}`, faults.ErrInvalidStyle, "fill, fit"},
	}
	for _, tt := range tests {
		_, err := LoadOrInit(writeConfig(t, tt.body))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		if !strings.Contains(err.Error(), tt.hint) {
			t.Fatalf("%s: error = %q, want it to mention %q", tt.name, err.Error(), tt.hint)
		}
	}
}

func TestLoadOrInit_IgnoresUnknownKeys(t *testing.T) {
	path := writeConfig(t, `{"api_key":"k","default_wallpaper":"/d.jpg","style":"span","theme":"x"}`)
	if _, err := LoadOrInit(path); err != nil {
		t.Fatalf("LoadOrInit returned error: %v", err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	wall, _ := filepath.Abs("/srv/walls/default.jpg")
	in := Config{APIKey: "ABC123", DefaultWallpaper: wall, Style: wallpaper.StyleTile}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	out, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit returned error: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestSave_RoundTripRelativeWallpaper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := Config{APIKey: "ABC123", DefaultWallpaper: "wallpapers/default.jpg", Style: wallpaper.StyleFill}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	out, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit returned error: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestResolveDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveDataDir("")
	if err != nil {
		t.Fatalf("ResolveDataDir returned error: %v", err)
	}
	if want := filepath.Join(home, ".local", "share", "apodwall"); got != want {
		t.Fatalf("ResolveDataDir(\"\") = %q, want %q", got, want)
	}

	got, err = ResolveDataDir("~/pics")
	if err != nil {
		t.Fatalf("ResolveDataDir returned error: %v", err)
	}
	if want := filepath.Join(home, "pics"); got != want {
		t.Fatalf("ResolveDataDir(~/pics) = %q, want %q", got, want)
	}
}
