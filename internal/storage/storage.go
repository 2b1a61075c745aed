package storage

import (
	"errors"
	"sync"
	"time"

	"messagehub/backend/internal/models"
)

// ErrValidation is returned when an ingested record is missing one of the
// required fields. Nothing is stored in that case.
var ErrValidation = errors.New("event record missing required field")

type Store interface {
	Ingest(rec *models.EventRecord) error
	ByPatientPhone(phone string) []models.EventRecord
	Len() int
}

// MemoryStore keeps every ingested record for the lifetime of the process.
// It is append-only: no edits, no deletes, reset only on restart. A mutex
// guards the slice so an append is never observed half-written by a
// concurrent reader.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.EventRecord

	now func() time.Time
}

// NewMemoryStore Constructor
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Ingest stamps the record with the server receive time and appends it.
// Content is never inspected beyond the presence of the four required
// fields; the caller-supplied Timestamp passes through untouched.
func (s *MemoryStore) Ingest(rec *models.EventRecord) error {
	if rec.ChatID == "" || rec.TenantPhone == "" || rec.PatientPhone == "" || rec.Message == "" {
		return ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ReceivedAt = s.now().UTC().Format(time.RFC3339Nano)
	s.records = append(s.records, *rec)
	return nil
}

// ByPatientPhone returns copies of every record whose PatientPhone matches,
// in insertion order. No pagination and no bound on result size; that is an
// accepted limitation of the in-memory design.
func (s *MemoryStore) ByPatientPhone(phone string) []models.EventRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.EventRecord, 0)
	for _, r := range s.records {
		if r.PatientPhone == phone {
			out = append(out, r)
		}
	}
	return out
}

// Len reports how many records the store currently holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
