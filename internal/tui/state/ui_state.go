package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	SearchMode             // Typing into the search box (/)
	FormMode               // Add/edit modal with huh
	DetailMode             // Full task view with rendered description
	HelpMode               // Displaying help screen
)

// Grid breakpoints: below narrowWidth one column, below wideWidth two, else three
const (
	narrowWidth = 80
	wideWidth   = 120
)

// UIState manages the user interface state.
// This includes the selected card, vertical scrolling of the grid,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selected is the index of the selected card in the visible (filtered) list
	selected int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// rowOffset is the index of the topmost visible grid row
	rowOffset int

	// lightBackground is set once the terminal reports a light background
	lightBackground bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selected:  0,
		width:     0,
		height:    0,
		mode:      NormalMode,
		rowOffset: 0,
	}
}

// Selected returns the index of the selected card.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected updates the selected card index.
func (s *UIState) SetSelected(index int) {
	s.selected = max(0, index)
}

// ClampSelection keeps the selection inside a list of count cards.
func (s *UIState) ClampSelection(count int) {
	if count == 0 {
		s.selected = 0
		s.rowOffset = 0
		return
	}
	s.selected = min(max(s.selected, 0), count-1)
}

// MoveSelection moves the selection by delta, staying within count cards.
// Returns false when the move would leave the grid.
func (s *UIState) MoveSelection(delta, count int) bool {
	next := s.selected + delta
	if next < 0 || next >= count {
		return false
	}
	s.selected = next
	return true
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the card grid.
// This is terminal height minus the header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 4    // title + search box
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// GridColumns returns how many cards fit side by side:
// 1 below 80 cells, 2 below 120, otherwise 3.
func (s *UIState) GridColumns() int {
	switch {
	case s.width < narrowWidth:
		return 1
	case s.width < wideWidth:
		return 2
	default:
		return 3
	}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// RowOffset returns the index of the topmost visible grid row.
func (s *UIState) RowOffset() int {
	return s.rowOffset
}

// EnsureSelectionVisible adjusts the row offset so the selected card's row
// is on screen.
//
// Parameters:
//   - visibleRows: number of grid rows that fit in the content area
func (s *UIState) EnsureSelectionVisible(visibleRows int) {
	visibleRows = max(visibleRows, 1)
	row := s.selected / s.GridColumns()

	// If selection is above visible area, scroll up
	if row < s.rowOffset {
		s.rowOffset = row
	}

	// If selection is below visible area, scroll down
	if row >= s.rowOffset+visibleRows {
		s.rowOffset = row - visibleRows + 1
	}
}

// ResetSelection moves the selection back to the first card.
// This is typically called when the filter changes.
func (s *UIState) ResetSelection() {
	s.selected = 0
	s.rowOffset = 0
}

// DarkBackground reports whether markdown should use the dark style.
// Terminals that never answer the background query are treated as dark.
func (s *UIState) DarkBackground() bool {
	return !s.lightBackground
}

// SetDarkBackground records the terminal's reported background.
func (s *UIState) SetDarkBackground(dark bool) {
	s.lightBackground = !dark
}
