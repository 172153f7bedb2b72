// Package state keeps a small TOML journal of the most recent run.
//
// # Overview
//
// The orchestrator writes one Entry at the end of every run that got past
// config loading. The `show` command and its viewer read it back to explain
// what happened last time. Only the latest run is kept; each Save replaces
// the file.
//
// # File Format
//
// <data-dir>/state.toml:
//
//	run_id = "3f0c9a4e-..."
//	started_at = 2024-05-01T07:00:00Z
//	finished_at = 2024-05-01T07:00:01.5Z
//	outcome = "fallback"
//	date = "2024-05-01"
//	title = "Nebula X"
//	media_type = "video"
//	applied_path = "/home/u/Pictures/default.jpg"
//	style = "fill"
//	setter = "gnome"
//	cause = "not_image"
//
// Optional fields are omitted when empty. cause is a faults.Kind label and is
// only present when the run fell back or aborted after a fallback. error
// carries the abort message, or the fallback cause's message when the
// fallback succeeded.
//
// # Outcomes
//
//   - success: today's image is on the desktop
//   - fallback: the default wallpaper is on the desktop
//   - aborted: nothing was changed
//
// Entry.Duration reports how long the run took; `show` prints it next to the
// outcome.
//
// # Durability
//
// Save writes to a .tmp sibling and renames it into place, so a reader never
// sees a half-written journal. Load returns ErrNoHistory when no run has been
// recorded yet.
//
// The journal is informational. Losing it never changes the outcome of a run,
// and write failures are logged, not returned to the user.
package state
