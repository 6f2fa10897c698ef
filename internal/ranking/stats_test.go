package ranking_test

import (
	"testing"

	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/stretchr/testify/assert"
)

func match(date, p1a, p1b, p2a, p2b string, s1, s2 int) ranking.Match {
	return ranking.Match{Date: date, P1A: p1a, P1B: p1b, P2A: p2a, P2B: p2b, Score1: s1, Score2: s2}
}

func TestStatsFor(t *testing.T) {
	matches := []ranking.Match{
		match("2024-06-03", "Ana", "", "Bruno", "", 6, 2),  // week 06-03, Ana wins
		match("2024-06-05", "Bruno", "", "Ana", "", 6, 4),  // week 06-03, Ana loses
		match("2024-06-09", "Ana", "Carla", "Bruno", "Diego", 3, 3), // Sunday, still week 06-03, tie
		match("2024-06-11", "Carla", "Ana", "Bruno", "Diego", 7, 5), // week 06-10, Ana wins as partner
		match("2024-06-12", "Bruno", "", "Carla", "", 6, 0), // Ana not involved
	}

	ana := ranking.Member{Name: "Ana", PaidWeeks: []string{"2024-06-03"}}
	stats := ranking.StatsFor(ana, matches)

	assert.Equal(t, 4, stats.Played)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, []string{"2024-06-03", "2024-06-10"}, stats.WeeksPlayed)
	assert.Equal(t, []string{"2024-06-03"}, stats.PaidWeeks)
	assert.Equal(t, []string{"2024-06-10"}, stats.UnpaidWeeks)
}

func TestStatsFor_NoMatches(t *testing.T) {
	stats := ranking.StatsFor(ranking.Member{Name: "Elisa"}, nil)
	assert.Zero(t, stats.Played)
	assert.Zero(t, stats.Wins)
	assert.Empty(t, stats.WeeksPlayed)
	assert.Empty(t, stats.UnpaidWeeks)
}

func TestStatsFor_PaidWeekNeverPlayedIsNotUnpaid(t *testing.T) {
	// A paid week with no matches stays out of weeksPlayed and therefore
	// out of unpaidWeeks; only played weeks can be owed.
	ana := ranking.Member{Name: "Ana", PaidWeeks: []string{"2024-05-06"}}
	matches := []ranking.Match{match("2024-06-03", "Ana", "", "Bruno", "", 6, 2)}

	stats := ranking.StatsFor(ana, matches)
	assert.Equal(t, []string{"2024-06-03"}, stats.WeeksPlayed)
	assert.Equal(t, []string{"2024-06-03"}, stats.UnpaidWeeks)
}

func TestToggleWeek(t *testing.T) {
	weeks := []string{"2024-06-03"}

	added := ranking.ToggleWeek(weeks, "2024-06-10")
	assert.ElementsMatch(t, []string{"2024-06-03", "2024-06-10"}, added)

	removed := ranking.ToggleWeek(added, "2024-06-03")
	assert.Equal(t, []string{"2024-06-10"}, removed)

	// Round trip: toggling twice restores the set.
	restored := ranking.ToggleWeek(ranking.ToggleWeek(weeks, "2024-06-03"), "2024-06-03")
	assert.ElementsMatch(t, weeks, restored)

	// Input is never mutated.
	assert.Equal(t, []string{"2024-06-03"}, weeks)
}
