package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	recomputeRuns      int
	recomputeDurations []float64
	matchesRegistered  int
	storeWrites        int
	slackNotifSent     int
	slackNotifFailed   int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		recomputeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRecomputeRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeRuns++
}

func (m *Mock) ObserveRecomputeDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeDurations = append(m.recomputeDurations, seconds)
}

func (m *Mock) IncMatchesRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRegistered++
}

func (m *Mock) IncStoreWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeWrites++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// RecomputeRuns returns the recorded number of recompute runs.
func (m *Mock) RecomputeRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recomputeRuns
}

// MatchesRegistered returns the recorded number of registered matches.
func (m *Mock) MatchesRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRegistered
}

// SlackNotifSent returns the recorded number of successful notifications.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the recorded number of failed notifications.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
