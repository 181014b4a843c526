package drawer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LogEntry 記錄一次完整抽籤：結果、推薦的故事名稱與對應的故事方向。
type LogEntry struct {
	ID         string    `json:"id,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
	Result     Result    `json:"result"`
	Titles     []string  `json:"titles"`
	Directions []string  `json:"directions,omitempty"`
}

// NewEntry stamps a fresh entry for result and titles. directions runs
// parallel to titles and may be nil.
func NewEntry(result Result, titles, directions []string) LogEntry {
	if result == nil {
		result = Result{}
	}
	if titles == nil {
		titles = []string{}
	}
	return LogEntry{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().Truncate(time.Second),
		Result:     result,
		Titles:     titles,
		Directions: directions,
	}
}

// Direction returns the story direction of the i-th title, or "".
func (e LogEntry) Direction(i int) string {
	if i < 0 || i >= len(e.Directions) {
		return ""
	}
	return e.Directions[i]
}

// timestamp layouts accepted on read, tried in order. Zone-less stamps
// are read in local time.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// UnmarshalJSON reads the timestamp leniently: anything that is not a
// recognisable time leaves it zero instead of failing the entry.
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	type plain LogEntry
	aux := struct {
		*plain
		Timestamp json.RawMessage `json:"timestamp"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Timestamp = parseTimestamp(aux.Timestamp)
	return nil
}

func parseTimestamp(raw json.RawMessage) time.Time {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil || s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
