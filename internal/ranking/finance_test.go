package ranking_test

import (
	"testing"

	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/stretchr/testify/assert"
)

func TestTotals_PerWeek(t *testing.T) {
	rules := ranking.Rules{MinWins: 3, MinGames: 5, WeeklyFee: 10}
	matches := []ranking.Match{
		match("2024-06-03", "Ana", "", "Bruno", "", 6, 2),
		match("2024-06-10", "Ana", "", "Bruno", "", 6, 2),
		match("2024-06-17", "Ana", "", "Carla", "", 6, 2),
	}
	members := []ranking.Member{
		{Name: "Ana", PaidWeeks: []string{"2024-06-03", "2024-06-10"}}, // 1 unpaid week
		{Name: "Bruno", PaidWeeks: []string{"2024-06-03"}},             // 1 unpaid week
		{Name: "Carla"},                                                // 1 unpaid week
		{Name: "Diego"},                                                // enrolled, never played, owes nothing
	}

	totals := ranking.Totals(members, matches, rules, ranking.FeeModelPerWeek)
	assert.Equal(t, 30.0, totals.Collected)
	assert.Equal(t, 30.0, totals.Pending)
}

func TestTotals_PerWeekIdentity(t *testing.T) {
	// When every paid week was actually played, collected + pending
	// equals fee x total weeks played across all members.
	rules := ranking.Rules{WeeklyFee: 25}
	matches := []ranking.Match{
		match("2024-06-03", "Ana", "", "Bruno", "", 6, 2),
		match("2024-06-10", "Ana", "", "Bruno", "", 2, 6),
		match("2024-06-17", "Bruno", "", "Ana", "", 6, 2),
	}
	members := []ranking.Member{
		{Name: "Ana", PaidWeeks: []string{"2024-06-03", "2024-06-17"}},
		{Name: "Bruno", PaidWeeks: []string{"2024-06-10"}},
	}

	totalWeeksPlayed := 0
	for _, m := range members {
		totalWeeksPlayed += len(ranking.StatsFor(m, matches).WeeksPlayed)
	}

	totals := ranking.Totals(members, matches, rules, ranking.FeeModelPerWeek)
	assert.Equal(t, rules.WeeklyFee*float64(totalWeeksPlayed), totals.Collected+totals.Pending)
}

func TestTotals_Flat(t *testing.T) {
	members := []ranking.Member{
		{Name: "Ana", Paid: true, Amount: 10},
		{Name: "Bruno", Paid: true, Amount: 15},
		{Name: "Carla", Paid: false, Amount: 10},
	}

	// Match history is ignored in the flat model.
	totals := ranking.Totals(members, nil, ranking.DefaultRules, ranking.FeeModelFlat)
	assert.Equal(t, 25.0, totals.Collected)
	assert.Equal(t, 10.0, totals.Pending)
}
