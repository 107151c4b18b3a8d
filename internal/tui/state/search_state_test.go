package state

import (
	"strings"
	"testing"
)

// TestAppendText_MaxLength ensures the query stops growing at 100 runes.
func TestAppendText_MaxLength(t *testing.T) {
	s := NewSearchState()
	s.Query = strings.Repeat("a", 100)

	if s.AppendText("x") {
		t.Error("AppendText() at max length returned true, want false")
	}
	if len(s.Query) != 100 {
		t.Errorf("Query length after append at max = %d, want 100", len(s.Query))
	}
}

// TestBackspace_MultibyteRune removes a whole rune, not a byte.
func TestBackspace_MultibyteRune(t *testing.T) {
	s := NewSearchState()
	s.AppendText("café")

	if !s.Backspace() {
		t.Fatal("Backspace() returned false, want true")
	}
	if s.Query != "caf" {
		t.Errorf("Query after backspace = %q, want %q", s.Query, "caf")
	}
}

// TestBackspace_Empty is a no-op on an empty query.
func TestBackspace_Empty(t *testing.T) {
	s := NewSearchState()

	if s.Backspace() {
		t.Error("Backspace() on empty query returned true, want false")
	}
}

// TestSearching follows the query, not the active flag.
func TestSearching(t *testing.T) {
	s := NewSearchState()
	if s.Searching() {
		t.Error("Searching() on new state = true, want false")
	}

	s.AppendText("milk")
	if !s.Searching() {
		t.Error("Searching() with query = false, want true")
	}

	s.Clear()
	s.Activate()
	if s.Searching() {
		t.Error("Searching() with empty active query = true, want false")
	}
}
