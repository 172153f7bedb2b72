// Command apodwall sets NASA's Astronomy Picture of the Day as the desktop
// wallpaper.
//
// # Commands
//
//	apodwall [run] [--hd]    fetch, download, print and set (default)
//	apodwall show [--plain]  view the last picture's metadata
//	apodwall config path     print the resolved config path
//	apodwall styles          list styles and their native values
//
// The bare command behaves like `run` and accepts its flags.
//
// # Global Flags
//
//	-c, --config     config file (env APODWALL_CONFIG, default ~/.config/apodwall/config.json)
//	--data-dir       image, apod.json and state.toml (default ~/.local/share/apodwall)
//	--log-level      debug, info, warn, error
//	--log-format     console or json
//
// # Output
//
// stdout carries the picture's metadata block followed by one confirmation
// line:
//
//	[2024-05-01] Nebula X | Jane Roe
//	A cloud of gas and dust...
//	Wallpaper set: /home/u/.local/share/apodwall/apod-2024-05-01.jpg
//
// A fallback run prints "Default wallpaper set: <path>" instead, and logs the
// cause as a warning. Logs always go to stderr.
//
// # Exit Status
//
// Exit status is 0 when a wallpaper was set, today's or the configured
// default, and 1 otherwise. Errors are printed to stderr as "apodwall: <err>".
// Ctrl-C cancels in-flight requests through the command context.
//
// # Testing
//
// commandContext carries optional setter and fetcher overrides. Tests build
// the root command with newRootCommand, capture stdout and stderr, and run
// whole command lines against httptest servers.
package main
