package merge

import (
	"sort"
	"time"

	"messagehub/backend/internal/display"
	"messagehub/backend/internal/models"
)

// Options controls merge policy.
type Options struct {
	// IgnoreBefore drops increment entries whose parsed timestamp predates
	// the viewing session start, so switching phones does not resurrect old
	// traffic. Nil disables the cutoff.
	IgnoreBefore *time.Time
}

// key is the dedup identity: display timestamp plus message text, both
// resolved across field aliases. The match is exact, with no normalization
// and no tolerance window.
type key struct {
	ts   string
	text string
}

// Merge extends base with the increment entries not already present, then
// returns the whole set sorted ascending by timestamp. Absent timestamps
// sort first as the empty string; ties keep insertion order. Increment
// entries carrying neither a timestamp nor any text are dropped silently so
// a poll cycle never fails mid-merge. Merging the same increment twice is a
// no-op.
func Merge(base []models.ChatMessage, increment []models.RawMessage, opts Options) []models.ChatMessage {
	merged := make([]models.ChatMessage, len(base))
	copy(merged, base)

	seen := make(map[key]struct{}, len(merged))
	for _, m := range merged {
		seen[key{m.CreatedAt, m.Message}] = struct{}{}
	}

	for _, raw := range increment {
		ts := raw.TimestampField()
		text := raw.TextField()
		if ts == "" && text == "" {
			continue // nothing to key on
		}

		if opts.IgnoreBefore != nil && ts != "" {
			if t, err := display.ParseTime(ts); err == nil && t.Before(*opts.IgnoreBefore) {
				continue
			}
		}

		k := key{ts, text}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		merged = append(merged, models.ChatMessage{
			CreatedAt: ts,
			ChatType:  string(display.Classify(raw)),
			Message:   text,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt < merged[j].CreatedAt
	})
	return merged
}
