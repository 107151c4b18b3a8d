package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tack/internal/tui/theme"
)

type StatusBarProps struct {
	Width     int
	Total     int
	Completed int
	Shown     int
	Searching bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: task counts
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf("tack - %d tasks, %d done", props.Total, props.Completed)
	if props.Searching {
		leftText = fmt.Sprintf("tack - %d of %d tasks match", props.Shown, props.Total)
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
