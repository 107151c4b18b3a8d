// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with the terminal width and height as dimensions.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalSize returns a modal width and height for the screen, as a fraction
// of it bounded by the given limits.
func ModalSize(screenWidth, screenHeight, minWidth, maxWidth int) (int, int) {
	width := min(max(screenWidth*ModalWidthNumerator/ModalWidthDivisor, minWidth), maxWidth)
	width = min(width, screenWidth)

	height := max(screenHeight*ModalHeightNumerator/ModalHeightDivisor, ModalMinHeight)
	height = min(height, screenHeight)

	return width, height
}
