// Package wallpaper applies an image as the desktop background.
//
// # Overview
//
// Setter has one variant per supported platform, picked once at startup by
// ForHost:
//
//   - windows: registry values under HKCU\Control Panel\Desktop followed by
//     SystemParametersInfoW(SPI_SETDESKWALLPAPER)
//   - gnome: gsettings on org.gnome.desktop.background
//   - feh: X11 window managers without a settings daemon
//   - darwin: osascript via System Events
//
// Hosts without a binding get a Setter that fails with
// faults.ErrUnsupportedPlatform. ForHost never returns nil.
//
// # Selection on Unix
//
//	GOOS linux/*bsd
//	    ├─ XDG_CURRENT_DESKTOP names GNOME, Unity, Budgie, Pantheon or Ubuntu
//	    │  and gsettings is on PATH ──> gnome
//	    ├─ feh on PATH ─────────────────> feh
//	    ├─ gsettings on PATH ───────────> gnome
//	    └─ otherwise ───────────────────> unsupported
//
// Host carries GOOS, Getenv, LookPath and the command Runner so tests can
// pick any branch without the real tools installed.
//
// # GNOME
//
// The gnome setter writes picture-options, then picture-uri, then
// picture-uri-dark (GNOME 42+; a failure there is ignored). GNOME only
// reloads the background when the URI changes, so callers give each image a
// distinct path (see imagefetch.DestinationFor).
//
// # Styles
//
// fill, fit, stretch, tile, center and span map to native values through
// fixed tables:
//
//	style    windows (WallpaperStyle/Tile)  gnome      feh
//	fill     10/0                           zoom       --bg-fill
//	fit      6/0                            scaled     --bg-max
//	stretch  2/0                            stretched  --bg-scale
//	tile     0/1                            wallpaper  --bg-tile
//	center   0/0                            centered   --bg-center
//	span     22/0                           spanned    --no-xinerama --bg-fill
//
// `apodwall styles` prints the same table from Mappings. The darwin setter
// validates the style but System Events has no placement modes.
//
// # Error Handling
//
// Every variant checks that the image exists and is a regular file before
// touching the desktop and reports faults.ErrInvalidPath otherwise. Failed
// commands and system calls become faults.ErrOS carrying the tool's output;
// an unknown style is faults.ErrInvalidStyle.
package wallpaper
