package mirror

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Mirror interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	PublishFunc func(ctx context.Context, collection, tournamentID string, doc any) error

	PublishCalls []PublishCall
}

// PublishCall holds the arguments for a call to Publish.
type PublishCall struct {
	Collection   string
	TournamentID string
	Doc          any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Publish(ctx context.Context, collection, tournamentID string, doc any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, PublishCall{Collection: collection, TournamentID: tournamentID, Doc: doc})
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, collection, tournamentID, doc)
	}
	return nil
}

func (m *Mock) Close() error { return nil }

// Calls returns a copy of the recorded publish calls.
func (m *Mock) Calls() []PublishCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishCall, len(m.PublishCalls))
	copy(out, m.PublishCalls)
	return out
}
