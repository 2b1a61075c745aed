package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"messagehub/backend/internal/client"
)

func TestChatHistoryDecodesRows(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/by-phone", r.URL.Path)
		assert.Equal(t, "+1614", r.URL.Query().Get("patientPhone"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chats":[{"createdAt":"t1","message":"a","chatType":"patient"},{"createdAt":"t2","body":"b"}]}`))
	}))
	defer srv.Close()
	backend := client.NewBackend(srv.URL, 15*time.Second)

	// Act
	chats, err := backend.ChatHistory(context.Background(), "+1614")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, chats, 2)
	assert.Equal(t, "a", chats[0].TextField())
	assert.Equal(t, "b", chats[1].TextField())
	assert.Equal(t, "t2", chats[1].TimestampField())
}

func TestChatHistoryStatusErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	backend := client.NewBackend(srv.URL, 15*time.Second)

	_, err := backend.ChatHistory(context.Background(), "+1614")

	var fe *client.FetchError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "chat history", fe.Op)
}

func TestChatHistoryNetworkErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse the connection
	backend := client.NewBackend(srv.URL, 15*time.Second)

	_, err := backend.ChatHistory(context.Background(), "+1614")

	var fe *client.FetchError
	assert.ErrorAs(t, err, &fe)
}

func TestSendMessagePostsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/message/send-test-patient", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "+1614", r.PostForm.Get("From"))
		assert.Equal(t, "+1555", r.PostForm.Get("To"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sentAt":"2024-01-01T00:00:05Z"}`))
	}))
	defer srv.Close()
	backend := client.NewBackend(srv.URL, 15*time.Second)

	ack, err := backend.SendMessage(context.Background(), "+1614", "+1555", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:05Z", ack["sentAt"])
}

func TestSendMessageEmptyAckBodyIsStillSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	backend := client.NewBackend(srv.URL, 15*time.Second)

	ack, err := backend.SendMessage(context.Background(), "+1614", "+1555", "hello")

	assert.NoError(t, err)
	assert.Empty(t, ack)
}

func TestSendMessageFailureIsErrSendFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()
	backend := client.NewBackend(srv.URL, 15*time.Second)

	_, err := backend.SendMessage(context.Background(), "+1614", "+1555", "hello")

	assert.True(t, errors.Is(err, client.ErrSendFailed))
}

func TestRelayMessagesByPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/by-phone", r.URL.Path)
		assert.Equal(t, "+1614", r.URL.Query().Get("patientPhone"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"timestamp":"t1","message":"hello"}]}`))
	}))
	defer srv.Close()
	relay := client.NewRelay(srv.URL)

	msgs, err := relay.MessagesByPhone(context.Background(), "+1614")

	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].TextField())
}

func TestRelayErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	relay := client.NewRelay(srv.URL)

	_, err := relay.MessagesByPhone(context.Background(), "+1614")

	var fe *client.FetchError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "relay messages", fe.Op)
}
