package engine

// Engine keeps derived ranking and finance views up to date. Writes signal
// it through Invalidate; reads always see a view consistent with some
// complete recomputation.
type Engine interface {
	// Invalidate schedules an asynchronous recomputation. Signals arriving
	// while one is already pending coalesce into a single run.
	Invalidate(tournamentID string)
	Ranking(tournamentID string) (RankingView, error)
	Finance(tournamentID string) (FinanceView, error)
	// Recompute runs synchronously and returns the fresh views.
	Recompute(tournamentID string) (RankingView, FinanceView, error)
	Stop()
}
