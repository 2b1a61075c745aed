package models

// RawMessage is the loose row shape shared by relay payloads and backend
// history entries. Producers disagree on field names, so every known alias
// is carried and resolved in exactly one place: TimestampField and TextField
// pick the first non-empty alias in a fixed order.
type RawMessage struct {
	Timestamp string `json:"timestamp,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`

	Message string `json:"message,omitempty"`
	Body    string `json:"body,omitempty"`
	Text    string `json:"text,omitempty"`

	ChatType  string `json:"chatType,omitempty"`
	Direction string `json:"direction,omitempty"`
	Source    string `json:"source,omitempty"`
	FromType  string `json:"fromType,omitempty"`
	From      string `json:"from,omitempty"`
}

// TimestampField resolves the record's timestamp: timestamp first, then
// createdAt. Empty when neither alias is set.
func (r RawMessage) TimestampField() string {
	if r.Timestamp != "" {
		return r.Timestamp
	}
	return r.CreatedAt
}

// TextField resolves the record's message text: message, then body, then text.
func (r RawMessage) TextField() string {
	if r.Message != "" {
		return r.Message
	}
	if r.Body != "" {
		return r.Body
	}
	return r.Text
}

// DirectionHint resolves the heuristic direction signal: direction, then
// source, then fromType.
func (r RawMessage) DirectionHint() string {
	if r.Direction != "" {
		return r.Direction
	}
	if r.Source != "" {
		return r.Source
	}
	return r.FromType
}
