package render

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/components"
	"github.com/thenoetrevino/tack/internal/tui/layers"
)

// RenderFormLayer renders the add/edit modal as a centered layer.
func RenderFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.Form == nil {
		return nil
	}

	width, _ := layers.ModalSize(m.UiState.Width(), m.UiState.Height(), layers.FormMinWidth, layers.FormMaxWidth)

	title := "New Task"
	boxStyle := components.CreateFormBoxStyle
	if m.FormState.IsEditing() {
		title = "Edit Task"
		boxStyle = components.EditFormBoxStyle
	}
	hint := components.SubtleStyle.Render("ctrl+s save · esc cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		m.FormState.Form.View(),
		"",
		hint,
	)

	box := boxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderDetailLayer renders the selected task with its markdown description.
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	task, err := m.Tasks.GetTask(m.Ctx, m.DetailState.TaskID)
	if err != nil {
		return nil
	}

	width, height := layers.ModalSize(m.UiState.Width(), m.UiState.Height(), layers.DetailMinWidth, layers.DetailMaxWidth)
	// Border and padding of DetailBoxStyle
	innerWidth := max(width-6, 10)

	status := components.SubtleStyle.Render("○ open")
	if task.Completed {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(m.Config.ColorScheme.Completed)).Render("✓ done")
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Width(innerWidth).Render(task.Title),
		status,
		"",
	)
	footer := components.SubtleStyle.Render("j/k scroll · e edit · esc close")

	// Whatever is left of the modal goes to the scrolling description
	viewportHeight := height - lipgloss.Height(header) - lipgloss.Height(footer) - 5
	m.DetailState.Resize(innerWidth, viewportHeight)
	m.DetailState.Viewport.SetContent(components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       innerWidth,
		Dark:        m.UiState.DarkBackground(),
	}))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.DetailState.Viewport.View(),
		"",
		footer,
	)
	box := components.DetailBoxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the help screen as a centered layer.
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	helpContent := HelpText(m.Config.KeyMappings)
	box := components.HelpBoxStyle.Width(layers.HelpWidth).Render(helpContent)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
