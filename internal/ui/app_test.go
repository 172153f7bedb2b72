package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/apodwall/internal/metadata"
	"github.com/five82/apodwall/internal/prefs"
	"github.com/five82/apodwall/internal/state"
)

func sampleArtifact() *metadata.Artifact {
	return &metadata.Artifact{
		Title:       "Nebula X",
		Date:        "2024-05-01",
		Explanation: strings.Repeat("Dust lanes cross the glowing core of the nebula. ", 40),
		Copyright:   "Jane Roe",
		MediaType:   "image",
		URL:         "https://apod.nasa.gov/apod/image/2405/nebula.jpg",
	}
}

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "pgdown":
		msg = tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestView_RendersArtifactAndRun(t *testing.T) {
	finished := time.Now().Add(-2 * time.Hour)
	m := New(Options{
		Artifact: sampleArtifact(),
		Entry: &state.Entry{
			Outcome:     state.OutcomeFallback,
			StartedAt:   finished.Add(-1500 * time.Millisecond),
			FinishedAt:  finished,
			AppliedPath: "/home/u/default.jpg",
			Cause:       "not_image",
		},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = sized(t, m, 100, 60)

	view := m.View()
	for _, want := range []string{"[2024-05-01]", "Nebula X", "Jane Roe", "Dust lanes", "Nightfox"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q", want)
		}
	}

	m.viewport.GotoBottom()
	body := m.viewport.View()
	for _, want := range []string{"fallback", "/home/u/default.jpg", "not_image", "2 hours ago", "1.5s"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body bottom missing %q:\n%s", want, body)
		}
	}
}

func TestView_EmptyState(t *testing.T) {
	m := sized(t, New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")}), 80, 20)
	if !strings.Contains(m.View(), "No picture fetched yet") {
		t.Fatalf("View() = %q, want empty-state hint", m.View())
	}
}

func TestKeys_QuitBindings(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		m := sized(t, New(Options{Artifact: sampleArtifact(), PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")}), 80, 20)
		_, cmd := press(t, m, k)
		if cmd == nil {
			t.Fatalf("%s returned nil cmd, want quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s cmd did not quit", k)
		}
	}
}

func TestKeys_CycleThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := sized(t, New(Options{Artifact: sampleArtifact(), PrefsPath: path, ThemeName: "Kanagawa", Wrap: 60}), 80, 20)

	m, _ = press(t, m, "T")
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	if m.prefsErr != nil {
		t.Fatalf("prefsErr = %v", m.prefsErr)
	}
	saved, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Slate" || saved.Wrap != 60 {
		t.Fatalf("saved prefs = %+v, want Slate/60", saved)
	}
}

func TestKeys_Scroll(t *testing.T) {
	m := sized(t, New(Options{Artifact: sampleArtifact(), PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")}), 60, 10)
	if m.viewport.YOffset != 0 {
		t.Fatalf("YOffset = %d, want 0", m.viewport.YOffset)
	}
	m, _ = press(t, m, "j")
	if m.viewport.YOffset != 1 {
		t.Fatalf("after j YOffset = %d, want 1", m.viewport.YOffset)
	}
	m, _ = press(t, m, "k")
	if m.viewport.YOffset != 0 {
		t.Fatalf("after k YOffset = %d, want 0", m.viewport.YOffset)
	}
	m, _ = press(t, m, "pgdown")
	if m.viewport.YOffset == 0 {
		t.Fatalf("pgdown did not scroll")
	}
	m, _ = press(t, m, "g")
	if m.viewport.YOffset != 0 {
		t.Fatalf("after g YOffset = %d, want 0", m.viewport.YOffset)
	}
	m, _ = press(t, m, "G")
	if !m.viewport.AtBottom() {
		t.Fatalf("after G viewport not at bottom")
	}
}

func TestKeys_HelpOverlay(t *testing.T) {
	m := sized(t, New(Options{Artifact: sampleArtifact(), PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")}), 80, 30)
	m, _ = press(t, m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m, cmd := press(t, m, "q")
	if m.showHelp || cmd != nil {
		t.Fatalf("q while help is open should only close help")
	}
}

func TestContentWidth(t *testing.T) {
	m := New(Options{Wrap: 50})
	m.width = 120
	if got := m.contentWidth(); got != 50 {
		t.Fatalf("contentWidth = %d, want 50", got)
	}
	m.width = 30
	if got := m.contentWidth(); got != 26 {
		t.Fatalf("contentWidth = %d, want 26", got)
	}
	m.width = 5
	if got := m.contentWidth(); got != 20 {
		t.Fatalf("contentWidth = %d, want 20", got)
	}
}
