package notifier

import "github.com/rcoelho/beachpro/internal/ranking"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// Sent when a recomputation changes the qualified set.
	SendRankingUpdate(tournamentName string, standings []ranking.Standing, rules ranking.Rules, dryRun bool) error
	// Sent on demand to chase members with outstanding weekly fees.
	SendPaymentReminder(tournamentName string, debtors []ranking.Standing, rules ranking.Rules, dryRun bool) error

	// For formatting responses for slash commands
	FormatRankingResponse(tournamentName string, standings []ranking.Standing, rules ranking.Rules) (any, error)
}

// Noop is a Notifier that discards everything. Used when no provider is
// configured.
type Noop struct{}

func (Noop) SendRankingUpdate(string, []ranking.Standing, ranking.Rules, bool) error { return nil }
func (Noop) SendPaymentReminder(string, []ranking.Standing, ranking.Rules, bool) error {
	return nil
}
func (Noop) FormatRankingResponse(string, []ranking.Standing, ranking.Rules) (any, error) {
	return nil, nil
}
