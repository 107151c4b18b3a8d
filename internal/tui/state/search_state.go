package state

import "unicode/utf8"

// maxQueryLength caps the search query in runes
const maxQueryLength = 100

// SearchState manages the search box state.
// The query filters the grid live while typing; it stays applied after
// Enter and is cleared by Esc.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates the query was confirmed with Enter and keeps filtering
	// the grid in normal mode
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{
		Query:    "",
		IsActive: false,
	}
}

// AppendText appends typed text to the search query.
// Returns true if the text was added, false if the query would exceed the max length.
func (s *SearchState) AppendText(text string) bool {
	if text == "" || utf8.RuneCountInString(s.Query)+utf8.RuneCountInString(text) > maxQueryLength {
		return false
	}

	s.Query += text
	return true
}

// Backspace removes the last rune from the search query.
// Returns true if a rune was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	if len(s.Query) == 0 {
		return false
	}

	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	return true
}

// Clear resets the search query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}

// Activate sets the filter as active.
// This is called when the user presses Enter in search mode.
func (s *SearchState) Activate() {
	s.IsActive = true
}

// Deactivate clears the filter.
// This is called when the user presses ESC in search mode.
func (s *SearchState) Deactivate() {
	s.IsActive = false
}

// Searching reports whether a non-empty query is filtering the grid.
func (s *SearchState) Searching() bool {
	return s.Query != ""
}
