package session_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"messagehub/backend/internal/models"
)

// MockBackend is a mock implementation of the session.HistoryLoader and
// session.MessageSender interfaces.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ChatHistory(ctx context.Context, phone string) ([]models.RawMessage, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RawMessage), args.Error(1)
}

func (m *MockBackend) SendMessage(ctx context.Context, from, to, body string) (map[string]any, error) {
	args := m.Called(from, to, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockRelay is a mock implementation of the session.RealtimeFeed interface.
type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) MessagesByPhone(ctx context.Context, phone string) ([]models.RawMessage, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RawMessage), args.Error(1)
}
