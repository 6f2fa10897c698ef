package ranking_test

import (
	"testing"

	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWeeks = []string{"2024-06-03", "2024-06-10", "2024-06-17"}

// anaSeason is six matches for Ana across two weeks: four wins, one
// loss, one tie.
func anaSeason() []ranking.Match {
	return []ranking.Match{
		match("2024-06-03", "Ana", "", "Bruno", "", 6, 2),
		match("2024-06-04", "Ana", "", "Carla", "", 6, 1),
		match("2024-06-05", "Carla", "", "Ana", "", 2, 6),
		match("2024-06-10", "Ana", "Diego", "Bruno", "Carla", 7, 5),
		match("2024-06-11", "Ana", "", "Bruno", "", 3, 6),
		match("2024-06-12", "Ana", "", "Diego", "", 4, 4),
	}
}

func TestQualified(t *testing.T) {
	rules := ranking.Rules{MinWins: 3, MinGames: 5, WeeklyFee: 10}

	t.Run("all thresholds met and all weeks paid", func(t *testing.T) {
		ana := ranking.Member{Name: "Ana", PaidWeeks: []string{"2024-06-03", "2024-06-10"}}
		stats := ranking.StatsFor(ana, anaSeason())
		require.Equal(t, 6, stats.Played)
		require.Equal(t, 4, stats.Wins)
		assert.True(t, ranking.Qualified(stats, rules))
	})

	t.Run("an unpaid week blocks qualification", func(t *testing.T) {
		ana := ranking.Member{Name: "Ana", PaidWeeks: []string{"2024-06-03"}}
		stats := ranking.StatsFor(ana, anaSeason())
		assert.False(t, ranking.Qualified(stats, rules))
	})

	t.Run("zero matches never qualifies regardless of payment", func(t *testing.T) {
		idle := ranking.Member{Name: "Elisa", PaidWeeks: testWeeks}
		stats := ranking.StatsFor(idle, anaSeason())
		assert.False(t, ranking.Qualified(stats, rules))
	})

	t.Run("wins threshold", func(t *testing.T) {
		stats := ranking.PlayerStats{Played: 6, Wins: 2, WeeksPlayed: []string{"2024-06-03"}, UnpaidWeeks: []string{}}
		assert.False(t, ranking.Qualified(stats, rules))
	})

	t.Run("games threshold", func(t *testing.T) {
		stats := ranking.PlayerStats{Played: 4, Wins: 4, WeeksPlayed: []string{"2024-06-03"}, UnpaidWeeks: []string{}}
		assert.False(t, ranking.Qualified(stats, rules))
	})
}

func TestQualified_Monotonicity(t *testing.T) {
	rules := ranking.Rules{MinWins: 3, MinGames: 5, WeeklyFee: 10}
	ana := ranking.Member{Name: "Ana", PaidWeeks: []string{"2024-06-03", "2024-06-10"}}
	season := anaSeason()

	stats := ranking.StatsFor(ana, season)
	require.True(t, ranking.Qualified(stats, rules))

	// Adding another winning match inside an already-paid week can never
	// revoke qualification.
	more := append(append([]ranking.Match(nil), season...),
		match("2024-06-13", "Ana", "", "Bruno", "", 6, 0))
	assert.True(t, ranking.Qualified(ranking.StatsFor(ana, more), rules))

	// Removing a paid week from someone who played it revokes it.
	ana.PaidWeeks = []string{"2024-06-10"}
	assert.False(t, ranking.Qualified(ranking.StatsFor(ana, season), rules))
}

func TestQualifiedFlat(t *testing.T) {
	rules := ranking.Rules{MinWins: 3, MinGames: 5}
	stats := ranking.PlayerStats{Played: 6, Wins: 4}

	assert.True(t, ranking.QualifiedFlat(ranking.Member{Paid: true}, stats, rules))
	assert.False(t, ranking.QualifiedFlat(ranking.Member{Paid: false}, stats, rules))
	assert.False(t, ranking.QualifiedFlat(ranking.Member{Paid: true}, ranking.PlayerStats{Played: 6, Wins: 2}, rules))
}

func TestMissingRequirement_PriorityOrder(t *testing.T) {
	rules := ranking.Rules{MinWins: 3, MinGames: 5, WeeklyFee: 10}

	// Unpaid weeks outrank everything else, even with other shortfalls.
	stats := ranking.PlayerStats{Played: 1, Wins: 0, WeeksPlayed: []string{"2024-06-03"}, UnpaidWeeks: []string{"2024-06-03"}}
	assert.Equal(t, "fee pending (1 week(s))", ranking.MissingRequirement(ranking.Member{}, stats, rules, ranking.FeeModelPerWeek))

	// With fees settled, the wins shortfall comes next.
	stats = ranking.PlayerStats{Played: 2, Wins: 1, WeeksPlayed: []string{"2024-06-03"}, UnpaidWeeks: []string{}}
	assert.Equal(t, "2 more win(s)", ranking.MissingRequirement(ranking.Member{}, stats, rules, ranking.FeeModelPerWeek))

	// Then the games shortfall.
	stats = ranking.PlayerStats{Played: 3, Wins: 3, WeeksPlayed: []string{"2024-06-03"}, UnpaidWeeks: []string{}}
	assert.Equal(t, "2 more game(s)", ranking.MissingRequirement(ranking.Member{}, stats, rules, ranking.FeeModelPerWeek))

	// Flat model surfaces the unpaid flag first.
	assert.Equal(t, "fee unpaid", ranking.MissingRequirement(ranking.Member{Paid: false}, stats, rules, ranking.FeeModelFlat))
}

func TestRank_OrderAndNumbers(t *testing.T) {
	rules := ranking.Rules{MinWins: 3, MinGames: 5, WeeklyFee: 10}

	// Season where Ana (4W/6G, all paid) qualifies; Bruno has 4 wins too
	// but owes a week; Carla never plays.
	matches := []ranking.Match{
		match("2024-06-03", "Ana", "", "Diego", "", 6, 2),
		match("2024-06-03", "Bruno", "", "Diego", "", 6, 2),
		match("2024-06-04", "Ana", "", "Diego", "", 6, 2),
		match("2024-06-04", "Bruno", "", "Diego", "", 6, 2),
		match("2024-06-05", "Ana", "", "Diego", "", 6, 2),
		match("2024-06-05", "Bruno", "", "Diego", "", 6, 2),
		match("2024-06-10", "Ana", "", "Diego", "", 6, 2),
		match("2024-06-10", "Bruno", "", "Diego", "", 6, 2),
		match("2024-06-11", "Ana", "", "Diego", "", 2, 6),
		match("2024-06-11", "Bruno", "", "Diego", "", 2, 6),
		match("2024-06-12", "Ana", "", "Diego", "", 1, 6),
		match("2024-06-12", "Bruno", "", "Diego", "", 1, 6),
	}
	members := []ranking.Member{
		{ID: "m1", Name: "Carla"},
		{ID: "m2", Name: "Bruno", PaidWeeks: []string{"2024-06-03"}},
		{ID: "m3", Name: "Ana", PaidWeeks: []string{"2024-06-03", "2024-06-10"}},
	}

	standings := ranking.Rank(members, matches, rules, ranking.FeeModelPerWeek)
	require.Len(t, standings, 3)

	assert.Equal(t, "Ana", standings[0].Name)
	assert.True(t, standings[0].Qualified)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Empty(t, standings[0].Missing)

	assert.Equal(t, "Bruno", standings[1].Name)
	assert.False(t, standings[1].Qualified, "same wins but an unpaid week ranks below")
	assert.Zero(t, standings[1].Rank)
	assert.Equal(t, "fee pending (1 week(s))", standings[1].Missing)

	assert.Equal(t, "Carla", standings[2].Name)
	assert.Zero(t, standings[2].Rank)
}

func TestRank_Idempotent(t *testing.T) {
	rules := ranking.DefaultRules
	members := []ranking.Member{
		{ID: "m1", Name: "Ana", PaidWeeks: []string{"2024-06-03"}},
		{ID: "m2", Name: "Bruno"},
	}
	matches := anaSeason()

	first := ranking.Rank(members, matches, rules, ranking.FeeModelPerWeek)
	second := ranking.Rank(members, matches, rules, ranking.FeeModelPerWeek)
	assert.Equal(t, first, second)
}

func TestRank_TiesKeepEnrollmentOrder(t *testing.T) {
	// Two members with identical stats stay in input (enrollment) order.
	members := []ranking.Member{
		{ID: "m1", Name: "Ana"},
		{ID: "m2", Name: "Bruno"},
	}
	standings := ranking.Rank(members, nil, ranking.DefaultRules, ranking.FeeModelPerWeek)
	require.Len(t, standings, 2)
	assert.Equal(t, "Ana", standings[0].Name)
	assert.Equal(t, "Bruno", standings[1].Name)
}
