package ranking

import "sort"

// StatsFor aggregates a member's matches into their per-player stats.
// Matches are joined by display name across all four participant slots.
// Quadratic over members x matches, which is fine at club scale; the
// whole view is recomputed from scratch on every snapshot anyway.
func StatsFor(member Member, matches []Match) PlayerStats {
	stats := PlayerStats{
		PaidWeeks: sortedCopy(member.PaidWeeks),
	}

	weekSet := make(map[string]struct{})
	for _, m := range matches {
		if SideOf(m, member.Name) == SideNone {
			continue
		}
		stats.Played++
		if WonBy(m, member.Name) {
			stats.Wins++
		}
		weekSet[WeekKeyFor(m.EffectiveDate())] = struct{}{}
	}

	stats.WeeksPlayed = make([]string, 0, len(weekSet))
	for wk := range weekSet {
		stats.WeeksPlayed = append(stats.WeeksPlayed, wk)
	}
	sort.Strings(stats.WeeksPlayed)

	paid := make(map[string]struct{}, len(member.PaidWeeks))
	for _, wk := range member.PaidWeeks {
		paid[wk] = struct{}{}
	}
	stats.UnpaidWeeks = make([]string, 0)
	for _, wk := range stats.WeeksPlayed {
		if _, ok := paid[wk]; !ok {
			stats.UnpaidWeeks = append(stats.UnpaidWeeks, wk)
		}
	}

	return stats
}

// ToggleWeek flips a week's presence in a paid-weeks set: absent weeks
// are added, present ones removed. The input slice is not mutated.
func ToggleWeek(paidWeeks []string, weekKey string) []string {
	updated := make([]string, 0, len(paidWeeks)+1)
	found := false
	for _, wk := range paidWeeks {
		if wk == weekKey {
			found = true
			continue
		}
		updated = append(updated, wk)
	}
	if !found {
		updated = append(updated, weekKey)
	}
	return updated
}

func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
