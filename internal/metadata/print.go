package metadata

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const defaultWrapWidth = 80

// PrintOptions control console rendering.
type PrintOptions struct {
	Width    int
	Colorize bool
}

var (
	dateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#63cdcf"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#dbc074")).Bold(true)
	copyrightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#738091")).Italic(true)
)

// Header renders "[date] title | copyright"; the copyright part is omitted
// for public-domain pictures.
func Header(a Artifact, colorize bool) string {
	date, title, credit := "["+a.Date+"]", a.Title, a.Copyright
	if colorize {
		date = dateStyle.Render(date)
		title = titleStyle.Render(title)
		if credit != "" {
			credit = copyrightStyle.Render(credit)
		}
	}
	line := date + " " + title
	if credit != "" {
		line += " | " + credit
	}
	return line
}

// Print writes the header and the wrapped explanation to w.
func Print(w io.Writer, a Artifact, opts PrintOptions) error {
	width := opts.Width
	if width <= 0 {
		width = defaultWrapWidth
	}

	var b strings.Builder
	b.WriteString(Header(a, opts.Colorize))
	b.WriteByte('\n')
	if explanation := strings.TrimSpace(a.Explanation); explanation != "" {
		b.WriteString(text.WrapSoft(explanation, width))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ShouldColorize reports whether w is a terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
