package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/thenoetrevino/tack/internal/tui/theme"
)

type DescriptionProps struct {
	Description string
	Width       int
	Dark        bool
}

type rendererKey struct {
	width int
	dark  bool
}

// Glamour renderers are slow to build; keep one per width and background
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

func getRenderer(key rendererKey) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := styles.LightStyle
	if key.dark {
		style = styles.DarkStyle
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(key.width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderDescription renders a task description as markdown. The raw text is
// shown if glamour fails; a blank description gets a placeholder.
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}

	renderer, err := getRenderer(rendererKey{width: props.Width, dark: props.Dark})
	if err != nil {
		return props.Description
	}
	rendered, err := renderer.Render(props.Description)
	if err != nil {
		return props.Description
	}
	return strings.TrimSpace(rendered)
}
