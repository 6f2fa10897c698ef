package notifier

import (
	"sync"

	"github.com/rcoelho/beachpro/internal/ranking"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendRankingUpdateFunc     func(tournamentName string, standings []ranking.Standing, rules ranking.Rules, dryRun bool) error
	SendPaymentReminderFunc   func(tournamentName string, debtors []ranking.Standing, rules ranking.Rules, dryRun bool) error
	FormatRankingResponseFunc func(tournamentName string, standings []ranking.Standing, rules ranking.Rules) (any, error)

	// Call records
	SendRankingUpdateCalls []struct {
		TournamentName string
		Standings      []ranking.Standing
		DryRun         bool
	}
	SendPaymentReminderCalls []struct {
		TournamentName string
		Debtors        []ranking.Standing
		DryRun         bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankingUpdateCalls = nil
	m.SendPaymentReminderCalls = nil
}

func (m *MockNotifier) SendRankingUpdate(tournamentName string, standings []ranking.Standing, rules ranking.Rules, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankingUpdateCalls = append(m.SendRankingUpdateCalls, struct {
		TournamentName string
		Standings      []ranking.Standing
		DryRun         bool
	}{tournamentName, standings, dryRun})
	if m.SendRankingUpdateFunc != nil {
		return m.SendRankingUpdateFunc(tournamentName, standings, rules, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendPaymentReminder(tournamentName string, debtors []ranking.Standing, rules ranking.Rules, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPaymentReminderCalls = append(m.SendPaymentReminderCalls, struct {
		TournamentName string
		Debtors        []ranking.Standing
		DryRun         bool
	}{tournamentName, debtors, dryRun})
	if m.SendPaymentReminderFunc != nil {
		return m.SendPaymentReminderFunc(tournamentName, debtors, rules, dryRun)
	}
	return nil
}

func (m *MockNotifier) FormatRankingResponse(tournamentName string, standings []ranking.Standing, rules ranking.Rules) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatRankingResponseFunc != nil {
		return m.FormatRankingResponseFunc(tournamentName, standings, rules)
	}
	return nil, nil
}
