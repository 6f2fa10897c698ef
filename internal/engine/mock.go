package engine

import "sync"

// MockEngine is a mock implementation of the Engine interface for testing.
// It is safe for concurrent use.
type MockEngine struct {
	mu sync.Mutex

	// Spies for method calls
	InvalidateFunc func(tournamentID string)
	RankingFunc    func(tournamentID string) (RankingView, error)
	FinanceFunc    func(tournamentID string) (FinanceView, error)
	RecomputeFunc  func(tournamentID string) (RankingView, FinanceView, error)

	// Call records
	InvalidateCalls []string
	RecomputeCalls  []string
}

// NewMock creates a new mock instance.
func NewMock() *MockEngine {
	return &MockEngine{}
}

// Reset clears all call records.
func (m *MockEngine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls = nil
	m.RecomputeCalls = nil
}

func (m *MockEngine) Invalidate(tournamentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls = append(m.InvalidateCalls, tournamentID)
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(tournamentID)
	}
}

func (m *MockEngine) Ranking(tournamentID string) (RankingView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RankingFunc != nil {
		return m.RankingFunc(tournamentID)
	}
	return RankingView{TournamentID: tournamentID}, nil
}

func (m *MockEngine) Finance(tournamentID string) (FinanceView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FinanceFunc != nil {
		return m.FinanceFunc(tournamentID)
	}
	return FinanceView{TournamentID: tournamentID}, nil
}

func (m *MockEngine) Recompute(tournamentID string) (RankingView, FinanceView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecomputeCalls = append(m.RecomputeCalls, tournamentID)
	if m.RecomputeFunc != nil {
		return m.RecomputeFunc(tournamentID)
	}
	return RankingView{TournamentID: tournamentID}, FinanceView{TournamentID: tournamentID}, nil
}

func (m *MockEngine) Stop() {}
