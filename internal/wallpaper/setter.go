package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/five82/apodwall/internal/faults"
)

// Setter applies an image as the desktop background.
type Setter interface {
	Name() string
	Set(ctx context.Context, imagePath string, style Style) error
}

// Runner executes an external command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands through os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// Host describes the environment used to pick a Setter. Zero fields fall back
// to the running process.
type Host struct {
	GOOS     string
	Getenv   func(string) string
	LookPath func(string) (string, error)
	Run      Runner
}

func (h Host) withDefaults() Host {
	if h.GOOS == "" {
		h.GOOS = runtime.GOOS
	}
	if h.Getenv == nil {
		h.Getenv = os.Getenv
	}
	if h.LookPath == nil {
		h.LookPath = exec.LookPath
	}
	if h.Run == nil {
		h.Run = ExecRunner
	}
	return h
}

// ForHost selects the Setter variant for the host. It never returns nil; hosts
// without a known binding get a Setter that fails with ErrUnsupportedPlatform.
func ForHost(host Host) Setter {
	h := host.withDefaults()
	switch h.GOOS {
	case "windows":
		return newWindowsSetter()
	case "darwin":
		if _, err := h.LookPath("osascript"); err == nil {
			return &darwinSetter{run: h.Run}
		}
		return unsupportedSetter{reason: "osascript not found"}
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return linuxSetter(h)
	default:
		return unsupportedSetter{reason: "no wallpaper binding for " + h.GOOS}
	}
}

func linuxSetter(h Host) Setter {
	_, gsErr := h.LookPath("gsettings")
	_, fehErr := h.LookPath("feh")

	desktop := strings.ToLower(h.Getenv("XDG_CURRENT_DESKTOP"))
	for _, name := range []string{"gnome", "unity", "budgie", "pantheon", "ubuntu"} {
		if strings.Contains(desktop, name) && gsErr == nil {
			return &gnomeSetter{run: h.Run}
		}
	}
	if fehErr == nil {
		return &fehSetter{run: h.Run}
	}
	if gsErr == nil {
		return &gnomeSetter{run: h.Run}
	}
	return unsupportedSetter{reason: "neither gsettings nor feh found"}
}

// resolveImage returns the absolute path of an existing regular file.
func resolveImage(imagePath string) (string, error) {
	trimmed := strings.TrimSpace(imagePath)
	if trimmed == "" {
		return "", faults.Wrap(faults.ErrInvalidPath, "wallpaper", "resolve", "image path is empty", nil)
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", faults.Wrap(faults.ErrInvalidPath, "wallpaper", "resolve", trimmed, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", faults.Wrap(faults.ErrInvalidPath, "wallpaper", "stat", abs, err)
	}
	if info.IsDir() {
		return "", faults.Wrap(faults.ErrInvalidPath, "wallpaper", "stat", abs+" is a directory", nil)
	}
	return abs, nil
}

func runChecked(ctx context.Context, run Runner, name string, args ...string) error {
	out, err := run(ctx, name, args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = name
		} else {
			msg = fmt.Sprintf("%s: %s", name, msg)
		}
		return faults.Wrap(faults.ErrOS, "wallpaper", "exec", msg, err)
	}
	return nil
}

type unsupportedSetter struct {
	reason string
}

func (u unsupportedSetter) Name() string { return "unsupported" }

func (u unsupportedSetter) Set(context.Context, string, Style) error {
	return faults.Wrap(faults.ErrUnsupportedPlatform, "wallpaper", "set", u.reason, nil)
}
