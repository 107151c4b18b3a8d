package render

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tack/internal/config"
	"github.com/thenoetrevino/tack/internal/tui/components"
)

type helpSection struct {
	title string
	keys  [][2]string
}

// HelpText builds the help screen from the configured key mappings
func HelpText(km config.KeyMappings) string {
	sections := []helpSection{
		{"TASKS", [][2]string{
			{km.AddTask, "add task"},
			{km.EditTask, "edit selected task"},
			{km.DeleteTask, "delete selected task"},
			{km.ToggleTask, "toggle done"},
			{km.ViewTask, "view details"},
		}},
		{"NAVIGATION", [][2]string{
			{km.PrevColumn + "/" + km.NextColumn, "previous/next card"},
			{km.PrevTask + "/" + km.NextTask, "row up/down"},
		}},
		{"SEARCH", [][2]string{
			{km.Search, "filter tasks"},
			{"enter", "keep filter"},
			{"esc", "clear filter"},
		}},
		{"FORMS", [][2]string{
			{km.SaveForm, "save"},
			{"esc", "cancel"},
		}},
		{"OTHER", [][2]string{
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("tack keyboard shortcuts"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(components.SubtleStyle.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			fmt.Fprintf(&b, "  %-10s %s\n", k[0], k[1])
		}
	}
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("press %s or esc to close", km.ShowHelp)))
	return b.String()
}
