// Package faults defines the error kinds shared by every apodwall stage.
//
// # Markers
//
// Each stage wraps its failures with one of the sentinel markers via Wrap, so
// the orchestrator can decide between falling back and aborting with
// errors.Is, while the message keeps the stage and operation that failed:
//
//	faults.Wrap(faults.ErrNetwork, "apod", "fetch", "", err)
//	// network error: apod: fetch: dial tcp: connection refused
//
// Both the marker and the cause stay reachable through errors.Is and
// errors.As. A nil marker means ErrIO.
//
// # Who Raises What
//
//	config      ErrConfigMissing, ErrConfigInvalid, ErrInvalidStyle
//	apod        ErrNetwork, ErrAPI, ErrParse
//	app         ErrNotImage, ErrAborted
//	imagefetch  ErrNetwork, ErrIO, ErrParse
//	wallpaper   ErrUnsupportedPlatform, ErrInvalidPath, ErrOS, ErrInvalidStyle
//
// IsConfig groups the config markers; those abort before any network call.
// Everything else after config loading sends the run to the fallback.
//
// # Labels
//
// Kind maps an error to a short snake_case label (network_error, not_image,
// unsupported_platform, ...) used in logs and as the cause field of the run
// journal. When an error carries several markers the most specific one wins,
// with ErrAborted first.
package faults
