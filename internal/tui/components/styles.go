// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tack/internal/config/colors"
	"github.com/thenoetrevino/tack/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// CardStyle defines the appearance of an open task card
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (app header, dialog titles)
	TitleStyle lipgloss.Style

	// CreateFormBoxStyle defines the add dialog (green border)
	CreateFormBoxStyle lipgloss.Style

	// EditFormBoxStyle defines the edit dialog (blue border)
	EditFormBoxStyle lipgloss.Style

	// DetailBoxStyle defines the task detail view (accent border)
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// SearchBoxStyle defines the search input line
	SearchBoxStyle lipgloss.Style

	// SearchBoxFocusedStyle is the search input while typing
	SearchBoxFocusedStyle lipgloss.Style

	// EmptyStateStyle defines the placeholder shown when no cards render
	EmptyStateStyle lipgloss.Style

	// SubtleStyle is muted helper text
	SubtleStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.TaskBorder)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	CreateFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	EditFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	SearchBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(colors.Subtle)).
		Foreground(lipgloss.Color(colors.Normal))

	SearchBoxFocusedStyle = SearchBoxStyle.
		BorderForeground(lipgloss.Color(colors.Accent))

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Italic(true).
		Padding(1, 2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)
}
