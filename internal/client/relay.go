package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"messagehub/backend/internal/models"
)

const relayTimeout = 5 * time.Second

// Relay reads the in-memory hub's filtered message feed. The relay never
// pushes; the console polls this client on a fixed interval.
type Relay struct {
	BaseURL string
	HTTP    *http.Client
}

// NewRelay Constructor
func NewRelay(baseURL string) *Relay {
	return &Relay{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: relayTimeout},
	}
}

// MessagesByPhone returns the relay's stored events for a patient phone, in
// the relay's insertion order.
func (r *Relay) MessagesByPhone(ctx context.Context, phone string) ([]models.RawMessage, error) {
	endpoint := r.BaseURL + "/messages/by-phone?patientPhone=" + url.QueryEscape(phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "relay messages", Err: err}
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "relay messages", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: "relay messages", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload struct {
		Messages []models.RawMessage `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Op: "relay messages", Err: err}
	}
	return payload.Messages, nil
}
