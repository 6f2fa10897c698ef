package engine

import (
	"time"

	"github.com/rcoelho/beachpro/internal/ranking"
)

// RankingView is the cached, fully derived ranking for one tournament.
type RankingView struct {
	TournamentID string             `json:"tournament_id"`
	ComputedAt   time.Time          `json:"computed_at"`
	FeeModel     ranking.FeeModel   `json:"fee_model"`
	Rules        ranking.Rules      `json:"rules"`
	Standings    []ranking.Standing `json:"standings"`
}

// FinanceView is the cached fee summary for one tournament.
type FinanceView struct {
	TournamentID string                `json:"tournament_id"`
	ComputedAt   time.Time             `json:"computed_at"`
	FeeModel     ranking.FeeModel      `json:"fee_model"`
	Totals       ranking.FinanceTotals `json:"totals"`
}
