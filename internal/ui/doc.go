// Package ui implements the `apodwall show` viewer.
//
// # Overview
//
// The viewer is a single Bubble Tea program that displays what the last run
// left in the data directory. It never touches the network or the wallpaper.
// `show --plain`, or any non-terminal stdout, skips the viewer entirely and
// prints the same information as text (see cmd/apodwall).
//
// # Layout
//
//	┌──────────────────────────────────────────────┐
//	│ [2024-05-01] Nebula X | Jane Roe             │  header
//	├──────────────────────────────────────────────┤
//	│ Dust lanes cross the glowing core of ...     │
//	│                                              │  viewport
//	│ Last run                                     │
//	│ outcome   fallback                           │
//	│ finished  2 hours ago (2024-05-01 07:00:01)  │
//	│ took      1.5s                               │
//	│ applied   /home/u/Pictures/default.jpg       │
//	├──────────────────────────────────────────────┤
//	│ q Quit • ? Toggle help              Nightfox │  footer
//	└──────────────────────────────────────────────┘
//
// The body is a bubbles viewport holding the wrapped explanation and the
// journal entry. Empty journal fields are skipped. Without an artifact the
// body shows a hint to run `apodwall run` first.
//
// # Keys
//
//	j/k, up/down   scroll one line
//	pgup/pgdown    scroll one page (also b, f, space)
//	g/G            top/bottom (also home, end)
//	T              cycle theme (saved to prefs.toml)
//	?, h           help overlay
//	q, esc, ctrl+c quit
//
// # Themes
//
// Nightfox, Kanagawa and Slate are lipgloss palettes. Run outcomes map to
// Success (success), Warning (fallback) and Danger (aborted) colors. The theme
// name and wrap width come from prefs.toml (package prefs); cycling the theme
// writes the new name back, and a failed write is shown in the footer.
//
// # Sizing
//
// Nothing renders until the first tea.WindowSizeMsg; View returns
// "Loading..." until then. Each resize rebuilds the viewport content at the
// new width, capped by Options.Wrap when set.
package ui
