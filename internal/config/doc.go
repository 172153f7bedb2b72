// Package config loads the apodwall JSON configuration.
//
// # Overview
//
// The configuration holds the three values a run cannot guess: the NASA API
// key, the default wallpaper used when today's picture cannot be applied, and
// the style used to place images on the desktop. Everything else (data
// directory, log level, endpoint) comes from command-line flags.
//
// # Configuration Discovery
//
// The config path is resolved in this order:
//
//  1. The --config flag when given
//  2. The APODWALL_CONFIG environment variable (handled in cmd/apodwall)
//  3. ~/.config/apodwall/config.json (default)
//
// ResolvePath expands ~ and makes the result absolute against the working
// directory.
//
// # File Format
//
//	{
//	    "api_key": "DEMO_KEY",
//	    "default_wallpaper": "~/Pictures/default.jpg",
//	    "style": "fill"
//	}
//
// All three keys are required. style is one of fill, fit, stretch, tile,
// center or span; case and surrounding spaces are ignored.
//
// # First Run
//
// LoadOrInit creates the file with empty values when it does not exist and
// returns faults.ErrConfigMissing naming the path, so nothing downstream runs
// with empty credentials. The user fills the file in and runs again. The tool
// never edits the file after creating it; Save exists for that creation step.
//
// # Path Handling
//
// default_wallpaper is trimmed and a leading ~ is expanded to the home
// directory. Any other value is kept exactly as written:
//
//   - Absolute paths: used as-is ("/usr/share/backgrounds/default.jpg")
//   - Tilde paths: expanded ("~/Pictures/default.jpg")
//   - Relative paths: kept relative ("walls/default.jpg"); the wallpaper
//     setter resolves them against the working directory
//
// Keeping relative values untouched means Save followed by LoadOrInit returns
// the same Config.
//
// The data directory is not part of the file. DefaultDataDir names the
// default (~/.local/share/apodwall) and ResolveDataDir expands an override.
//
// # Error Handling
//
// LoadOrInit reports:
//   - faults.ErrConfigMissing when the file had to be created
//   - faults.ErrConfigInvalid for malformed JSON, missing keys or empty values
//   - faults.ErrInvalidStyle for an unknown style
//
// All of these are found before any network call is made. faults.IsConfig
// matches every one of them.
//
// # Usage Example
//
//	cfg, err := config.LoadOrInit("")
//	if errors.Is(err, faults.ErrConfigMissing) {
//		fmt.Println("edit the new config file and run again")
//		return err
//	}
//	if err != nil {
//		return err
//	}
//	setter.Set(ctx, cfg.DefaultWallpaper, cfg.Style)
//
// # Testing Considerations
//
// Tests pass explicit paths under t.TempDir() and set HOME with t.Setenv when
// they exercise ~ expansion, so nothing reads the user's real config.
package config
