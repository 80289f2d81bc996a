package greeting

import (
	"context"
	"sync/atomic"
)

// MockService implements Service for handler tests.
type MockService struct {
	// Err, when set, is returned instead of a message.
	Err   error
	calls atomic.Int64
}

func (m *MockService) Welcome(context.Context) (*Message, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	msg := WelcomeMessage()
	return &msg, nil
}

// Calls reports how many times Welcome was invoked.
func (m *MockService) Calls() int64 {
	return m.calls.Load()
}
