package wallpaper

import (
	"context"
	"net/url"

	"github.com/five82/apodwall/internal/faults"
)

const gnomeSchema = "org.gnome.desktop.background"

type gnomeSetter struct {
	run Runner
}

func (g *gnomeSetter) Name() string { return "gnome" }

func (g *gnomeSetter) Set(ctx context.Context, imagePath string, style Style) error {
	abs, err := resolveImage(imagePath)
	if err != nil {
		return err
	}
	option, ok := gnomeStyles[style]
	if !ok {
		return faults.Wrap(faults.ErrInvalidStyle, "wallpaper", "gnome", string(style), nil)
	}
	uri := (&url.URL{Scheme: "file", Path: abs}).String()

	if err := runChecked(ctx, g.run, "gsettings", "set", gnomeSchema, "picture-options", option); err != nil {
		return err
	}
	if err := runChecked(ctx, g.run, "gsettings", "set", gnomeSchema, "picture-uri", uri); err != nil {
		return err
	}
	// picture-uri-dark only exists on GNOME 42+.
	_, _ = g.run(ctx, "gsettings", "set", gnomeSchema, "picture-uri-dark", uri)
	return nil
}

type fehSetter struct {
	run Runner
}

func (f *fehSetter) Name() string { return "feh" }

func (f *fehSetter) Set(ctx context.Context, imagePath string, style Style) error {
	abs, err := resolveImage(imagePath)
	if err != nil {
		return err
	}
	flags, ok := fehStyles[style]
	if !ok {
		return faults.Wrap(faults.ErrInvalidStyle, "wallpaper", "feh", string(style), nil)
	}
	args := append(append([]string{}, flags...), abs)
	return runChecked(ctx, f.run, "feh", args...)
}

// darwinSetter drives System Events through osascript. The scripting API has
// no fill modes, so style only passes validation.
type darwinSetter struct {
	run Runner
}

func (d *darwinSetter) Name() string { return "darwin" }

func (d *darwinSetter) Set(ctx context.Context, imagePath string, style Style) error {
	abs, err := resolveImage(imagePath)
	if err != nil {
		return err
	}
	if _, ok := gnomeStyles[style]; !ok {
		return faults.Wrap(faults.ErrInvalidStyle, "wallpaper", "darwin", string(style), nil)
	}
	script := `tell application "System Events" to tell every desktop to set picture to ` + appleScriptQuote(abs)
	return runChecked(ctx, d.run, "osascript", "-e", script)
}

func appleScriptQuote(s string) string {
	out := make([]rune, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(append(out, '"'))
}
