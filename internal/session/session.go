package session

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"messagehub/backend/internal/client"
	"messagehub/backend/internal/display"
	"messagehub/backend/internal/merge"
	"messagehub/backend/internal/models"
)

// ErrNoPhoneLoaded is returned by Send before a phone has been loaded.
var ErrNoPhoneLoaded = errors.New("no patient phone loaded")

// HistoryLoader is the slice of the backend client that serves the one-time
// history fetch.
type HistoryLoader interface {
	ChatHistory(ctx context.Context, phone string) ([]models.RawMessage, error)
}

// MessageSender is the slice of the backend client that serves outbound sends.
type MessageSender interface {
	SendMessage(ctx context.Context, from, to, body string) (map[string]any, error)
}

// RealtimeFeed is the relay side polled every cycle.
type RealtimeFeed interface {
	MessagesByPhone(ctx context.Context, phone string) ([]models.RawMessage, error)
}

// Session holds the state of one viewing session: the loaded phone, the
// instant the session began and the merged transcript. It is rebuilt from
// scratch whenever the phone changes and never persisted.
type Session struct {
	History HistoryLoader
	Relay   RealtimeFeed
	Sender  MessageSender

	// Tenant is the operator-side number, the To field of outgoing sends.
	Tenant string

	// IgnoreHistoricRealtime drops polled events older than the session
	// start, so a fresh session does not resurrect traffic from before the
	// user started watching.
	IgnoreHistoricRealtime bool

	mu        sync.Mutex
	phone     string
	startedAt time.Time
	messages  []models.ChatMessage

	now func() time.Time
}

// New Constructor
func New(history HistoryLoader, relay RealtimeFeed, sender MessageSender, tenant string) *Session {
	return &Session{
		History: history,
		Relay:   relay,
		Sender:  sender,
		Tenant:  tenant,
		now:     time.Now,
	}
}

// Load resets the session for a phone, captures the session start instant
// and pulls the stored history once. A transient history failure degrades to
// an empty transcript; polling fills it back in over time.
func (s *Session) Load(ctx context.Context, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phone = phone
	s.startedAt = s.now().UTC()
	s.messages = nil

	if s.History == nil {
		return
	}

	chats, err := s.History.ChatHistory(ctx, phone)
	if err != nil {
		var fe *client.FetchError
		if errors.As(err, &fe) {
			log.Printf("WARN: History unavailable for %s, starting empty: %v", phone, err)
		} else {
			log.Printf("ERROR: Failed to load history for %s: %v", phone, err)
		}
		return
	}

	for _, raw := range chats {
		ts := raw.TimestampField()
		text := raw.TextField()
		if ts == "" && text == "" {
			continue
		}
		s.messages = append(s.messages, models.ChatMessage{
			CreatedAt: ts,
			ChatType:  string(display.Classify(raw)),
			Message:   text,
		})
	}
}

// Poll fetches the relay increment and merges it into the transcript. A
// transient fetch failure is treated as an empty increment for this cycle
// and retried on the next one.
func (s *Session) Poll(ctx context.Context) {
	s.mu.Lock()
	phone := s.phone
	s.mu.Unlock()

	if phone == "" || s.Relay == nil {
		return
	}

	increment, err := s.Relay.MessagesByPhone(ctx, phone)
	if err != nil {
		log.Printf("WARN: Relay poll failed, treating as empty: %v", err)
		increment = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var opts merge.Options
	if s.IgnoreHistoricRealtime {
		cutoff := s.startedAt
		opts.IgnoreBefore = &cutoff
	}
	s.messages = merge.Merge(s.messages, increment, opts)
}

// Send appends an optimistic sending entry BEFORE the call, then reconciles
// its status from the outcome. The entry is never removed: a failed send
// stays visible, tagged failed, and the error is returned for display.
func (s *Session) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.phone == "" {
		s.mu.Unlock()
		return ErrNoPhoneLoaded
	}

	id := uuid.NewString()
	s.messages = append(s.messages, models.ChatMessage{
		ID:        id,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
		ChatType:  models.ChatTypePatient,
		Message:   text,
		Status:    models.StatusSending,
	})
	from := s.phone
	s.mu.Unlock()

	ack, err := s.Sender.SendMessage(ctx, from, s.Tenant, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.settle(id, models.StatusFailed, "")
		return err
	}
	s.settle(id, models.StatusSent, serverTimestamp(ack))
	return nil
}

// Messages returns a display-ordered copy of the transcript.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// Phone reports the currently loaded patient phone.
func (s *Session) Phone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phone
}

// settle flips the status of the optimistic entry with the given id and
// adopts a server timestamp when one was supplied.
func (s *Session) settle(id, status, ts string) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].ID == id {
			s.messages[i].Status = status
			if ts != "" {
				s.messages[i].CreatedAt = ts
			}
			return
		}
	}
}

// serverTimestamp pulls a timestamp out of the send ack, checking the known
// aliases in order.
func serverTimestamp(ack map[string]any) string {
	for _, k := range []string{"timestamp", "createdAt", "sentAt"} {
		if v, ok := ack[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
