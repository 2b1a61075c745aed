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

const historyTimeout = 20 * time.Second

// Backend talks to the durable messaging backend that owns chat history and
// the outbound send route. This repo is only a client of it.
type Backend struct {
	BaseURL     string
	HTTP        *http.Client
	SendTimeout time.Duration
}

// NewBackend Constructor
func NewBackend(baseURL string, sendTimeout time.Duration) *Backend {
	return &Backend{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		HTTP:        &http.Client{Timeout: historyTimeout},
		SendTimeout: sendTimeout,
	}
}

// ChatHistory loads the stored conversation for a patient phone. Rows come
// back in the backend's loose shape; normalization happens at the consumer.
func (b *Backend) ChatHistory(ctx context.Context, phone string) ([]models.RawMessage, error) {
	endpoint := b.BaseURL + "/chat/by-phone?patientPhone=" + url.QueryEscape(phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "chat history", Err: err}
	}
	resp, err := b.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "chat history", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: "chat history", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload struct {
		Chats []models.RawMessage `json:"chats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Op: "chat history", Err: err}
	}
	return payload.Chats, nil
}

// SendMessage posts an outgoing message as form fields From/To/Body. The ack
// body is returned as a loose map so the caller can adopt a server-supplied
// timestamp when one is present.
func (b *Backend) SendMessage(ctx context.Context, from, to, body string) (map[string]any, error) {
	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	ctx, cancel := context.WithTimeout(ctx, b.SendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.BaseURL+"/message/send-test-patient", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSendFailed, resp.StatusCode)
	}

	ack := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		// Some deployments reply with an empty body. The send still succeeded.
		return map[string]any{}, nil
	}
	return ack, nil
}
