package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// maxMessageWidth wraps long messages such as storage errors
const maxMessageWidth = 50

// Render renders a notification banner for one notification
func Render(n state.Notification) string {
	style := styleFor(n.Level)
	message := n.Message

	headerText := style.icon + " " + style.title
	width := min(max(lipgloss.Width(headerText), lipgloss.Width(message)), maxMessageWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(width).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}
