package models

// EventRecord represents a single inbound message observed by the relay hub.
// Records are immutable after ingestion and live only as long as the process.
type EventRecord struct {
	// ChatID is the opaque conversation identifier assigned by the automation workflow.
	ChatID string `json:"chatId" binding:"required"`
	// TenantPhone is the operator-side number the message was addressed to.
	TenantPhone string `json:"tenantPhone" binding:"required"`
	// PatientPhone is the patient-side number; retrieval filters on this field.
	PatientPhone string `json:"patientPhone" binding:"required"`
	// Message is the text body.
	Message string `json:"message" binding:"required"`
	// Timestamp is caller-supplied and optional. It is never trusted for ordering.
	Timestamp string `json:"timestamp,omitempty"`
	// ReceivedAt is assigned by the relay at ingestion time.
	ReceivedAt string `json:"receivedAt,omitempty"`
}

// Display status values for outgoing messages. Client-local only, never
// persisted by the relay or the backend.
const (
	StatusSending = "sending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// The two origin classes every message resolves to.
const (
	ChatTypePatient = "patient"
	ChatTypeTenant  = "tenant"
)

// ChatMessage is a merged record as displayed to the console user, produced
// by combining backend history with polled relay events.
type ChatMessage struct {
	// ID is set only on optimistic local entries so a send outcome can find them.
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"createdAt"`
	ChatType  string `json:"chatType"`
	Message   string `json:"message"`
	// Status is "" for settled messages, otherwise one of the Status* values.
	Status string `json:"status,omitempty"`
}
