package notifications

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

func TestRender_HeaderFollowsLevel(t *testing.T) {
	tests := []struct {
		level  state.NotificationLevel
		header string
	}{
		{state.LevelInfo, "• Info"},
		{state.LevelWarning, "⚠ Warning"},
		{state.LevelError, "✕ Error"},
	}

	for _, tt := range tests {
		out := ansi.Strip(Render(state.Notification{Level: tt.level, Message: "Imported 3 tasks"}))
		if !strings.Contains(out, tt.header) {
			t.Errorf("level %d: expected header %q in\n%s", tt.level, tt.header, out)
		}
		if !strings.Contains(out, "Imported 3 tasks") {
			t.Errorf("level %d: message missing from\n%s", tt.level, out)
		}
	}
}

func TestRender_WrapsLongMessages(t *testing.T) {
	message := strings.Repeat("storage unavailable ", 10)
	out := Render(state.Notification{Level: state.LevelError, Message: message})

	for line := range strings.Lines(ansi.Strip(out)) {
		// border and padding add four cells around the content
		if w := ansi.StringWidth(strings.TrimRight(line, "\n")); w > maxMessageWidth+4 {
			t.Errorf("line wider than %d cells: %d", maxMessageWidth+4, w)
		}
	}
}
