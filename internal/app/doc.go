// Package app runs the fetch-and-set pipeline.
//
// # Overview
//
// Run is the composition root for one invocation. It loads the config, asks
// the APOD API for today's record, downloads the image into the data
// directory and hands it to the wallpaper Setter. Every external call is made
// once; there are no retries. The cobra commands in cmd/apodwall are thin
// wrappers around Run and only translate a Result into a confirmation line.
//
// # States
//
//	Init ──> ConfigLoaded ──> MetadataFetched ──> ImageReady ──> WallpaperSet (success)
//	  │            │                  │                 │
//	  │            └──────────────────┴─────────────────┴──> WallpaperSet (fallback)
//	  │                                                              │
//	  └──> Aborted <─────────────────────────────────────────────────┘
//
// Each transition is logged at debug level with the run ID, so a --log-level
// debug run shows the exact path taken. Result.State holds the state the run
// ended in.
//
// # Fallback Policy
//
// A config failure aborts before any network traffic. Everything after
// ConfigLoaded that fails moves to the fallback, the configured default
// wallpaper:
//
//   - the APOD request fails (faults.ErrNetwork, faults.ErrAPI, faults.ErrParse)
//   - the record is a video or other non-image (faults.ErrNotImage)
//   - the download fails or is not an image (faults.ErrNetwork, faults.ErrIO,
//     faults.ErrParse)
//   - the primary Set fails for any reason, including
//     faults.ErrUnsupportedPlatform
//
// The fallback is always attempted, even when the primary failure makes it
// unlikely to work; the Setter reports the definitive error. A failed
// fallback aborts with faults.ErrAborted wrapping the Setter's error, and
// Result.Cause still holds the failure that triggered the fallback.
//
// # Data Directory
//
// The data directory (default ~/.local/share/apodwall, see
// config.DefaultDataDir) holds every file a run produces:
//
//	apod-2024-05-01.jpg   today's image, one file name per APOD date
//	apod.json             metadata of the last fetched record
//	state.toml            journal of the last run
//
// The image file name carries the APOD date, so desktops that cache the
// wallpaper by URI see a new value every day. Once today's image is on the
// desktop, earlier downloads are pruned (imagefetch.Prune). A fallback run
// leaves them alone.
//
// # Side Outputs
//
// Once the record is fetched it is printed to Stdout and written to apod.json,
// even if the run later falls back. Failing to write it only logs a warning.
// After config loading succeeds, the run always ends with a journal entry in
// state.toml (see package state), including aborted runs.
//
// # Usage Example
//
//	res, err := app.Run(ctx, app.Options{
//		ConfigPath: "",       // ~/.config/apodwall/config.json
//		DataDir:    "",       // ~/.local/share/apodwall
//		PreferHD:   true,
//		Logger:     logger,
//		Stdout:     os.Stdout,
//	})
//	if err != nil {
//		return err // config problem or failed fallback
//	}
//	fmt.Println(res.Outcome, res.AppliedPath)
//
// # Testing
//
// Options accepts an apod.Fetcher, an imagefetch.Downloader and a
// wallpaper.Setter so tests can drive the pipeline against httptest servers
// without touching the desktop. Now and Colorize pin the clock and the color
// decision. Tests typically:
//   - point ConfigPath and DataDir at t.TempDir()
//   - serve a record and a small PNG from httptest
//   - script Setter errors per call to walk each fallback edge
package app
