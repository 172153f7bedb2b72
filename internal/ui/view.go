package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const bodyPadding = 4

// renderMain stacks the header, the scrolling body and the footer.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := styles.Header.Width(m.width)

	if m.artifact == nil {
		return bar.Render(styles.Title.Render("apodwall")) + "\n" +
			styles.FaintText.Render(strings.Repeat("─", max(m.width, 0)))
	}

	line := styles.InfoText.Render("["+m.artifact.Date+"]") + " " + styles.Title.Render(m.artifact.Title)
	if m.artifact.Copyright != "" {
		line += styles.MutedText.Render(" | " + m.artifact.Copyright)
	}
	return bar.Render(line) + "\n" +
		styles.FaintText.Render(strings.Repeat("─", max(m.width, 0)))
}

// renderBody builds the viewport content: explanation, then details and the
// last run.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	if m.artifact == nil {
		b.WriteString(styles.MutedText.Render("No picture fetched yet. Run `apodwall run` first."))
		b.WriteString("\n")
	} else {
		explanation := strings.TrimSpace(m.artifact.Explanation)
		if explanation == "" {
			explanation = "(no explanation)"
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Render(explanation))
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Details"))
		b.WriteString("\n")
		writeField(&b, styles, "media", m.artifact.MediaType)
		writeField(&b, styles, "url", m.artifact.URL)
	}

	if e := m.entry; e != nil {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Last run"))
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("outcome"))
		b.WriteString(styles.OutcomeStyle(e.Outcome).Render(string(e.Outcome)))
		b.WriteString("\n")
		if !e.FinishedAt.IsZero() {
			writeField(&b, styles, "finished", humanize.Time(e.FinishedAt)+" ("+e.FinishedAt.Local().Format(time.DateTime)+")")
		}
		if d := e.Duration().Round(time.Millisecond); d > 0 {
			writeField(&b, styles, "took", d.String())
		}
		writeField(&b, styles, "applied", e.AppliedPath)
		writeField(&b, styles, "style", e.Style)
		writeField(&b, styles, "setter", e.Setter)
		writeField(&b, styles, "cause", e.Cause)
		if e.Error != "" {
			writeField(&b, styles, "error", e.Error)
		}
	}
	return styles.Body.Render(b.String())
}

func writeField(b *strings.Builder, styles Styles, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString(styles.Label.Render(label))
	b.WriteString(styles.Text.Render(value))
	b.WriteString("\n")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	right := styles.FaintText.Render(m.theme.Name)
	if m.prefsErr != nil {
		right = styles.WarningText.Render("prefs not saved")
	}
	if m.viewport.TotalLineCount() > m.viewport.Height {
		right = styles.FaintText.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)) + "  " + right
	}
	h := m.help
	h.Width = max(m.width-lipgloss.Width(right)-3, 0)
	left := h.View(m.keys)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	help := m.help
	help.ShowAll = true
	content := m.theme.Styles().Title.Render("Keyboard Shortcuts") + "\n\n" + help.View(m.keys)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) contentWidth() int {
	width := m.width - bodyPadding
	if m.wrap > 0 && m.wrap < width {
		width = m.wrap
	}
	return max(width, 20)
}
