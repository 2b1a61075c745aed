package display

import (
	"fmt"
	"time"

	"messagehub/backend/internal/models"
)

// ParseTime accepts RFC3339 (with Z or a numeric offset) plus the zone-less
// ISO form the backend emits for naive UTC instants.
func ParseTime(ts string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999999", ts, time.UTC)
}

// FormatTime renders a display timestamp as "Jan 02 • 15:04". Unparseable
// input is returned unchanged rather than hidden.
func FormatTime(ts string) string {
	t, err := ParseTime(ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 02 • 15:04")
}

// TranscriptLine renders one console line for a merged message: an origin
// label, the formatted timestamp, the text and a trailing status marker for
// optimistic entries.
func TranscriptLine(m models.ChatMessage) string {
	label := "T"
	if m.ChatType == models.ChatTypePatient {
		label = "P"
	}

	line := fmt.Sprintf("[%s] %s  %s", label, FormatTime(m.CreatedAt), m.Message)
	switch m.Status {
	case models.StatusSending:
		line += " (sending)"
	case models.StatusSent:
		line += " (sent)"
	case models.StatusFailed:
		line += " (failed)"
	}
	return line
}
