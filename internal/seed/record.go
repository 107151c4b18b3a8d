package seed

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tack/internal/models"
)

// recordID accepts either a JSON string or a JSON number and keeps it as text.
// Upstream todo APIs commonly use numeric ids.
type recordID string

// UnmarshalJSON implements json.Unmarshaler
func (id *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := sonic.ConfigStd.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recordID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	*id = recordID(data)
	return nil
}

// record is one element of the upstream collection.
// Only id, title and completed are consumed; anything else is ignored.
type record struct {
	ID        recordID `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
}

// shape converts the first limit records into tasks with an empty description.
// Records without an id, or repeating an id already taken, are dropped so the
// resulting list keeps ids unique.
func shape(records []record, limit int) []models.Task {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	tasks := make([]models.Task, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		id := string(rec.ID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		tasks = append(tasks, models.Task{
			ID:          id,
			Title:       rec.Title,
			Description: "",
			Completed:   rec.Completed,
		})
	}
	return tasks
}
