package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tack/internal/models"
	"github.com/thenoetrevino/tack/internal/tui/theme"
)

// CardProps describes one card in the grid
type CardProps struct {
	Task     models.Task
	Selected bool
	Width    int // outer width including border
}

// RenderCard renders a single task as a fixed-height card
//
//	╭──────────────────────╮
//	│ {Title, wrapped}     │
//	│ {second title line}  │
//	│ {description…}       │
//	│ ○ open               │
//	╰──────────────────────╯
func RenderCard(props CardProps) string {
	inner := max(props.Width-cardChrome, 1)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	status := "○ open"
	if props.Task.Completed {
		titleStyle = titleStyle.Strikethrough(true).Foreground(lipgloss.Color(theme.Completed))
		statusStyle = statusStyle.Foreground(lipgloss.Color(theme.Completed))
		status = "✓ done"
	}

	lines := make([]string, 0, titleLines+descriptionLine+1)
	for _, line := range clampLines(props.Task.Title, inner, titleLines) {
		lines = append(lines, titleStyle.Render(line))
	}
	for len(lines) < titleLines {
		lines = append(lines, "")
	}

	description := strings.Join(strings.Fields(props.Task.Description), " ")
	lines = append(lines, SubtleStyle.Render(truncate.StringWithTail(description, uint(inner), "…")))
	lines = append(lines, statusStyle.Render(status))

	style := CardStyle.Width(props.Width)
	switch {
	case props.Selected:
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg)).
			BorderBackground(lipgloss.Color(theme.SelectedBg))
	case props.Task.Completed:
		style = style.BorderForeground(lipgloss.Color(theme.Completed))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// clampLines word-wraps text to width and keeps at most n lines,
// marking the last kept line with an ellipsis when text was cut.
func clampLines(text string, width, n int) []string {
	wrapped := strings.Split(wordwrap.String(text, width), "\n")
	for i, line := range wrapped {
		// wordwrap leaves words longer than width intact
		wrapped[i] = truncate.StringWithTail(line, uint(width), "…")
	}
	if len(wrapped) <= n {
		return wrapped
	}
	kept := wrapped[:n]
	last := kept[n-1]
	if lipgloss.Width(last)+1 > width {
		last = truncate.String(last, uint(max(width-1, 0)))
	}
	kept[n-1] = last + "…"
	return kept
}
