package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/apodwall/internal/metadata"
	"github.com/five82/apodwall/internal/prefs"
	"github.com/five82/apodwall/internal/state"
)

// Options configures the viewer.
type Options struct {
	// Artifact is the last saved metadata; nil renders an empty-state hint.
	Artifact *metadata.Artifact
	// Entry is the last journaled run, if any.
	Entry     *state.Entry
	ThemeName string
	PrefsPath string
	// Wrap caps the explanation width; zero follows the terminal.
	Wrap int
}

// Model is the Bubble Tea model of the viewer.
type Model struct {
	artifact  *metadata.Artifact
	entry     *state.Entry
	prefsPath string
	wrap      int

	theme    Theme
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	width    int
	height   int
	ready    bool
	showHelp bool

	prefsErr error
}

const (
	headerHeight = 2
	footerHeight = 1
)

// New creates the viewer model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		artifact:  opts.Artifact,
		entry:     opts.Entry,
		prefsPath: prefsPath,
		wrap:      opts.Wrap,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.applyHelpStyles()
	return m
}

// Run starts the viewer in the alternate screen and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(m.height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = bodyHeight
		}
		m.refreshContent()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefsErr = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Wrap: m.wrap})
		m.applyHelpStyles()
		m.refreshContent()
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}
