package components

// SearchBoxProps describes the search line under the header
type SearchBoxProps struct {
	Query   string
	Focused bool
	// Kept marks a query confirmed with Enter that still filters the grid
	Kept  bool
	Width int
}

// RenderSearchBox renders the search input. A focused box shows a cursor;
// an unfocused empty box shows a hint.
func RenderSearchBox(props SearchBoxProps) string {
	style := SearchBoxStyle
	content := "/ " + props.Query
	switch {
	case props.Focused:
		style = SearchBoxFocusedStyle
		content += "_"
	case props.Query == "":
		content = SubtleStyle.Render("/ search tasks")
	case props.Kept:
		content += SubtleStyle.Render("  (esc clears)")
	}
	return style.Width(props.Width).Render(content)
}
