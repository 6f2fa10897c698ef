package ranking

// Totals aggregates collected and outstanding fees across the whole
// tournament.
//
// Per-week model: collected counts every paid week at the weekly fee,
// pending counts weeks actually played but not marked paid. A member who
// never played owes nothing, even while enrolled.
//
// Flat model: each member owes their flat amount once, split by the
// single paid flag; match history is ignored.
func Totals(members []Member, matches []Match, rules Rules, model FeeModel) FinanceTotals {
	var totals FinanceTotals

	if model == FeeModelFlat {
		for _, m := range members {
			if m.Paid {
				totals.Collected += m.Amount
			} else {
				totals.Pending += m.Amount
			}
		}
		return totals
	}

	for _, m := range members {
		totals.Collected += float64(len(m.PaidWeeks)) * rules.WeeklyFee
		stats := StatsFor(m, matches)
		totals.Pending += float64(len(stats.UnpaidWeeks)) * rules.WeeklyFee
	}
	return totals
}
