// Package logging builds the slog logger used across apodwall.
//
// # Formats
//
// Two formats are supported:
//
//   - console: one human-readable line per record
//   - json: one JSON object per record (log/slog's JSON handler)
//
// A console line looks like:
//
//	2024-05-01T07:00:01Z INFO run: image downloaded run_id=3f0c9a4e-... size="1.2 MB"
//
// A "component" attribute is promoted into the line prefix. Groups flatten to
// dotted keys (image.width=1024), and values with spaces are quoted.
//
// # Levels and Output
//
// ParseLevel accepts debug, info, warn and error; anything else means info.
// Debug runs also carry the source location of each record.
//
// Logs go to stderr by default so the metadata block and the confirmation
// line printed on stdout can be piped on their own. Discard returns a logger
// for callers that did not wire one.
package logging
