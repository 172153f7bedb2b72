// Package metadata persists and prints the descriptive fields of an APOD record.
//
// # Artifact
//
// Write stores title, explanation, date, copyright, media type and url as
// indented JSON, normally <data-dir>/apod.json. The file is replaced
// atomically and always describes the last fetched record, even when that
// record was a video and the run fell back. Read loads it back for `show` and
// returns ErrNoArtifact before the first fetch.
//
// # Console Output
//
// Print renders the same fields for the console:
//
//	[2024-05-01] Nebula X | Jane Roe
//	A cloud of gas and dust, wrapped at 80 columns by default...
//
// The copyright part is omitted for public-domain pictures. Colors come from
// lipgloss and are only used when ShouldColorize says the writer is a
// terminal.
//
// The orchestrator treats Write failures as warnings: losing the artifact
// never blocks setting the wallpaper.
package metadata
