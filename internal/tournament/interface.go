package tournament

import "github.com/rcoelho/beachpro/internal/ranking"

// Store defines the interface for interacting with tournament data.
type Store interface {
	CreateTournament(name, creatorID, creatorName string) (Tournament, error)
	ListTournaments() ([]Tournament, error)
	GetTournament(tournamentID string) (Tournament, error)
	JoinTournament(tournamentID, userID, displayName string) (ranking.Member, error)
	ListMembers(tournamentID string) ([]ranking.Member, error)
	GetMember(tournamentID, memberID string) (ranking.Member, error)
	GetMemberByUser(tournamentID, userID string) (ranking.Member, error)
	ListMatches(tournamentID string) ([]ranking.Match, error)
	AddMatch(tournamentID, registeredBy string, input MatchInput) (ranking.Match, error)
	ToggleWeekPaid(tournamentID, memberID, weekKey string) (ranking.Member, error)
	SetRules(tournamentID string, rules ranking.Rules) error
	SetMemberRole(tournamentID, memberID string, role ranking.Role) error
	Snapshot(tournamentID string) (Snapshot, error)
	Clear()
}
