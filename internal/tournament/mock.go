package tournament

import (
	"sync"

	"github.com/rcoelho/beachpro/internal/ranking"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateTournamentFunc func(name, creatorID, creatorName string) (Tournament, error)
	ListTournamentsFunc  func() ([]Tournament, error)
	GetTournamentFunc    func(tournamentID string) (Tournament, error)
	JoinTournamentFunc   func(tournamentID, userID, displayName string) (ranking.Member, error)
	ListMembersFunc      func(tournamentID string) ([]ranking.Member, error)
	GetMemberFunc        func(tournamentID, memberID string) (ranking.Member, error)
	GetMemberByUserFunc  func(tournamentID, userID string) (ranking.Member, error)
	ListMatchesFunc      func(tournamentID string) ([]ranking.Match, error)
	AddMatchFunc         func(tournamentID, registeredBy string, input MatchInput) (ranking.Match, error)
	ToggleWeekPaidFunc   func(tournamentID, memberID, weekKey string) (ranking.Member, error)
	SetRulesFunc         func(tournamentID string, rules ranking.Rules) error
	SetMemberRoleFunc    func(tournamentID, memberID string, role ranking.Role) error
	SnapshotFunc         func(tournamentID string) (Snapshot, error)
	ClearFunc            func()

	// Call records
	AddMatchCalls []struct {
		TournamentID string
		RegisteredBy string
		Input        MatchInput
	}
	ToggleWeekPaidCalls []struct {
		TournamentID string
		MemberID     string
		WeekKey      string
	}
	SetRulesCalls []struct {
		TournamentID string
		Rules        ranking.Rules
	}
	SetMemberRoleCalls []struct {
		TournamentID string
		MemberID     string
		Role         ranking.Role
	}
	SnapshotCalls []string
	ClearCalls    int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchCalls = nil
	m.ToggleWeekPaidCalls = nil
	m.SetRulesCalls = nil
	m.SetMemberRoleCalls = nil
	m.SnapshotCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) CreateTournament(name, creatorID, creatorName string) (Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateTournamentFunc != nil {
		return m.CreateTournamentFunc(name, creatorID, creatorName)
	}
	return Tournament{}, nil
}

func (m *MockStore) ListTournaments() ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTournamentsFunc != nil {
		return m.ListTournamentsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTournament(tournamentID string) (Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(tournamentID)
	}
	return Tournament{}, nil
}

func (m *MockStore) JoinTournament(tournamentID, userID, displayName string) (ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.JoinTournamentFunc != nil {
		return m.JoinTournamentFunc(tournamentID, userID, displayName)
	}
	return ranking.Member{}, nil
}

func (m *MockStore) ListMembers(tournamentID string) ([]ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(tournamentID)
	}
	return nil, nil
}

func (m *MockStore) GetMember(tournamentID, memberID string) (ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(tournamentID, memberID)
	}
	return ranking.Member{}, nil
}

func (m *MockStore) GetMemberByUser(tournamentID, userID string) (ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMemberByUserFunc != nil {
		return m.GetMemberByUserFunc(tournamentID, userID)
	}
	return ranking.Member{}, nil
}

func (m *MockStore) ListMatches(tournamentID string) ([]ranking.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(tournamentID)
	}
	return nil, nil
}

func (m *MockStore) AddMatch(tournamentID, registeredBy string, input MatchInput) (ranking.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchCalls = append(m.AddMatchCalls, struct {
		TournamentID string
		RegisteredBy string
		Input        MatchInput
	}{tournamentID, registeredBy, input})
	if m.AddMatchFunc != nil {
		return m.AddMatchFunc(tournamentID, registeredBy, input)
	}
	return ranking.Match{}, nil
}

func (m *MockStore) ToggleWeekPaid(tournamentID, memberID, weekKey string) (ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToggleWeekPaidCalls = append(m.ToggleWeekPaidCalls, struct {
		TournamentID string
		MemberID     string
		WeekKey      string
	}{tournamentID, memberID, weekKey})
	if m.ToggleWeekPaidFunc != nil {
		return m.ToggleWeekPaidFunc(tournamentID, memberID, weekKey)
	}
	return ranking.Member{}, nil
}

func (m *MockStore) SetRules(tournamentID string, rules ranking.Rules) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetRulesCalls = append(m.SetRulesCalls, struct {
		TournamentID string
		Rules        ranking.Rules
	}{tournamentID, rules})
	if m.SetRulesFunc != nil {
		return m.SetRulesFunc(tournamentID, rules)
	}
	return nil
}

func (m *MockStore) SetMemberRole(tournamentID, memberID string, role ranking.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetMemberRoleCalls = append(m.SetMemberRoleCalls, struct {
		TournamentID string
		MemberID     string
		Role         ranking.Role
	}{tournamentID, memberID, role})
	if m.SetMemberRoleFunc != nil {
		return m.SetMemberRoleFunc(tournamentID, memberID, role)
	}
	return nil
}

func (m *MockStore) Snapshot(tournamentID string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotCalls = append(m.SnapshotCalls, tournamentID)
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(tournamentID)
	}
	return Snapshot{}, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
