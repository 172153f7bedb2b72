package wallpaper

import (
	"fmt"
	"strings"

	"github.com/five82/apodwall/internal/faults"
)

// Style is the display mode applied to the desktop background.
type Style string

const (
	StyleFill    Style = "fill"
	StyleFit     Style = "fit"
	StyleStretch Style = "stretch"
	StyleTile    Style = "tile"
	StyleCenter  Style = "center"
	StyleSpan    Style = "span"
)

var styleOrder = []Style{StyleFill, StyleFit, StyleStretch, StyleTile, StyleCenter, StyleSpan}

// windowsStyle holds the registry values under HKCU\Control Panel\Desktop.
type windowsStyle struct {
	WallpaperStyle string
	TileWallpaper  string
}

var windowsStyles = map[Style]windowsStyle{
	StyleFill:    {WallpaperStyle: "10", TileWallpaper: "0"},
	StyleFit:     {WallpaperStyle: "6", TileWallpaper: "0"},
	StyleStretch: {WallpaperStyle: "2", TileWallpaper: "0"},
	StyleTile:    {WallpaperStyle: "0", TileWallpaper: "1"},
	StyleCenter:  {WallpaperStyle: "0", TileWallpaper: "0"},
	StyleSpan:    {WallpaperStyle: "22", TileWallpaper: "0"},
}

// gnomeStyles maps to org.gnome.desktop.background picture-options.
var gnomeStyles = map[Style]string{
	StyleFill:    "zoom",
	StyleFit:     "scaled",
	StyleStretch: "stretched",
	StyleTile:    "wallpaper",
	StyleCenter:  "centered",
	StyleSpan:    "spanned",
}

var fehStyles = map[Style][]string{
	StyleFill:    {"--bg-fill"},
	StyleFit:     {"--bg-max"},
	StyleStretch: {"--bg-scale"},
	StyleTile:    {"--bg-tile"},
	StyleCenter:  {"--bg-center"},
	StyleSpan:    {"--no-xinerama", "--bg-fill"},
}

// ParseStyle normalizes value and returns the matching Style.
func ParseStyle(value string) (Style, error) {
	normalized := Style(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range styleOrder {
		if s == normalized {
			return s, nil
		}
	}
	return "", faults.Wrap(faults.ErrInvalidStyle, "", "", fmt.Sprintf("%q is not one of %s", value, strings.Join(StyleNames(), ", ")), nil)
}

// StyleNames returns the supported style names in display order.
func StyleNames() []string {
	names := make([]string, len(styleOrder))
	for i, s := range styleOrder {
		names[i] = string(s)
	}
	return names
}

// Mapping describes the native values a style turns into on each platform.
type Mapping struct {
	Style   Style
	Windows string
	GNOME   string
	Feh     string
}

// Mappings returns the fixed style table, one row per style.
func Mappings() []Mapping {
	rows := make([]Mapping, 0, len(styleOrder))
	for _, s := range styleOrder {
		win := windowsStyles[s]
		rows = append(rows, Mapping{
			Style:   s,
			Windows: fmt.Sprintf("WallpaperStyle=%s TileWallpaper=%s", win.WallpaperStyle, win.TileWallpaper),
			GNOME:   gnomeStyles[s],
			Feh:     strings.Join(fehStyles[s], " "),
		})
	}
	return rows
}
