package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tack/internal/models"
)

// GridProps describes the visible card grid
type GridProps struct {
	Tasks     []models.Task
	Selected  int
	Columns   int
	RowOffset int
	Width     int
	Height    int
	Searching bool
}

// VisibleRows returns how many card rows fit in height
func VisibleRows(height int) int {
	return max(height/TaskCardHeight, 1)
}

// CardWidth returns the outer width of one card for a grid of columns
func CardWidth(width, columns int) int {
	columns = max(columns, 1)
	return max((width-cardGap*(columns-1))/columns, cardChrome+1)
}

// RenderGrid lays the cards out in rows of props.Columns, showing only the
// rows that fit, starting at RowOffset.
func RenderGrid(props GridProps) string {
	if len(props.Tasks) == 0 {
		text := EmptyListText
		if props.Searching {
			text = EmptySearchText
		}
		return EmptyStateStyle.Render(text)
	}

	columns := max(props.Columns, 1)
	cardWidth := CardWidth(props.Width, columns)
	visibleRows := VisibleRows(props.Height)
	totalRows := (len(props.Tasks) + columns - 1) / columns

	gap := strings.Repeat(" ", cardGap)
	var rows []string

	if props.RowOffset > 0 {
		rows = append(rows, IndicatorStyle.Width(props.Width).Render("▲ more above"))
	}

	end := min(props.RowOffset+visibleRows, totalRows)
	for row := props.RowOffset; row < end; row++ {
		var cards []string
		for col := range columns {
			idx := row*columns + col
			if idx >= len(props.Tasks) {
				break
			}
			if col > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, RenderCard(CardProps{
				Task:     props.Tasks[idx],
				Selected: idx == props.Selected,
				Width:    cardWidth,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if end < totalRows {
		rows = append(rows, IndicatorStyle.Width(props.Width).Render("▼ more below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
