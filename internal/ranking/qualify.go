package ranking

import (
	"fmt"
	"sort"
)

// Qualified applies the per-week fee model: a member qualifies once they
// played at least one week, owe nothing for the weeks they played, and
// meet both thresholds. A member with zero matches never qualifies,
// regardless of payment.
func Qualified(stats PlayerStats, rules Rules) bool {
	feeOK := len(stats.WeeksPlayed) > 0 && len(stats.UnpaidWeeks) == 0
	return feeOK && stats.Wins >= rules.MinWins && stats.Played >= rules.MinGames
}

// QualifiedFlat applies the legacy flat-fee model: one global paid flag
// per member, no per-week tracking.
func QualifiedFlat(member Member, stats PlayerStats, rules Rules) bool {
	return member.Paid && stats.Wins >= rules.MinWins && stats.Played >= rules.MinGames
}

// MissingRequirement reports the single highest-priority reason a member
// is not qualified: outstanding fees first, then the wins shortfall, then
// the games shortfall. Empty for qualified members.
func MissingRequirement(member Member, stats PlayerStats, rules Rules, model FeeModel) string {
	if model == FeeModelFlat {
		if !member.Paid {
			return "fee unpaid"
		}
	} else if len(stats.WeeksPlayed) > 0 && len(stats.UnpaidWeeks) > 0 {
		return fmt.Sprintf("fee pending (%d week(s))", len(stats.UnpaidWeeks))
	}
	if stats.Wins < rules.MinWins {
		return fmt.Sprintf("%d more win(s)", rules.MinWins-stats.Wins)
	}
	if stats.Played < rules.MinGames {
		return fmt.Sprintf("%d more game(s)", rules.MinGames-stats.Played)
	}
	return ""
}

// Rank derives the full ranking view-model from a snapshot. The sort is
// stable: qualified members first, then wins descending, then games
// played descending; remaining ties keep the members' enrollment order.
// Qualified members are numbered 1..N, everyone else keeps rank 0.
func Rank(members []Member, matches []Match, rules Rules, model FeeModel) []Standing {
	standings := make([]Standing, 0, len(members))
	for _, m := range members {
		stats := StatsFor(m, matches)
		var qualified bool
		if model == FeeModelFlat {
			qualified = QualifiedFlat(m, stats, rules)
		} else {
			qualified = Qualified(stats, rules)
		}
		st := Standing{
			Member:    m,
			Stats:     stats,
			Qualified: qualified,
		}
		if !qualified {
			st.Missing = MissingRequirement(m, stats, rules, model)
		}
		standings = append(standings, st)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Qualified != b.Qualified {
			return a.Qualified
		}
		if a.Stats.Wins != b.Stats.Wins {
			return a.Stats.Wins > b.Stats.Wins
		}
		return a.Stats.Played > b.Stats.Played
	})

	rank := 0
	for i := range standings {
		if standings[i].Qualified {
			rank++
			standings[i].Rank = rank
		}
	}
	return standings
}
