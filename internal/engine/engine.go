package engine

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rcoelho/beachpro/internal/metrics"
	"github.com/rcoelho/beachpro/internal/mirror"
	"github.com/rcoelho/beachpro/internal/notifier"
	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/rcoelho/beachpro/internal/tournament"
)

// engine recomputes views from store snapshots. One worker goroutine per
// tournament drains a buffered size-1 signal channel, so a burst of writes
// collapses into one recomputation.
type engine struct {
	store    tournament.Store
	mirror   mirror.Mirror
	notifier notifier.Notifier
	metrics  metrics.Metrics

	mu       sync.Mutex
	rankings map[string]RankingView
	finances map[string]FinanceView
	signals  map[string]chan struct{}

	stop    chan struct{}
	workers sync.WaitGroup
}

// New creates a new Engine.
func New(store tournament.Store, mir mirror.Mirror, notif notifier.Notifier, m metrics.Metrics) Engine {
	return &engine{
		store:    store,
		mirror:   mir,
		notifier: notif,
		metrics:  m,
		rankings: make(map[string]RankingView),
		finances: make(map[string]FinanceView),
		signals:  make(map[string]chan struct{}),
		stop:     make(chan struct{}),
	}
}

func (e *engine) Invalidate(tournamentID string) {
	e.mu.Lock()
	sig, ok := e.signals[tournamentID]
	if !ok {
		sig = make(chan struct{}, 1)
		e.signals[tournamentID] = sig
		e.workers.Add(1)
		go e.worker(tournamentID, sig)
	}
	e.mu.Unlock()

	select {
	case sig <- struct{}{}:
	default:
		// A recomputation is already pending; this signal coalesces into it.
	}
}

func (e *engine) worker(tournamentID string, sig chan struct{}) {
	defer e.workers.Done()
	for {
		select {
		case <-e.stop:
			return
		case <-sig:
			if _, _, err := e.Recompute(tournamentID); err != nil {
				log.Error("Recomputation failed", "error", err, "tournamentID", tournamentID)
			}
		}
	}
}

func (e *engine) Ranking(tournamentID string) (RankingView, error) {
	e.mu.Lock()
	view, ok := e.rankings[tournamentID]
	e.mu.Unlock()
	if ok {
		return view, nil
	}
	view, _, err := e.Recompute(tournamentID)
	return view, err
}

func (e *engine) Finance(tournamentID string) (FinanceView, error) {
	e.mu.Lock()
	view, ok := e.finances[tournamentID]
	e.mu.Unlock()
	if ok {
		return view, nil
	}
	_, view, err := e.Recompute(tournamentID)
	return view, err
}

func (e *engine) Recompute(tournamentID string) (RankingView, FinanceView, error) {
	start := time.Now()

	snap, err := e.store.Snapshot(tournamentID)
	if err != nil {
		return RankingView{}, FinanceView{}, err
	}

	t := snap.Tournament
	standings := ranking.Rank(snap.Members, snap.Matches, t.Rules, t.FeeModel)
	totals := ranking.Totals(snap.Members, snap.Matches, t.Rules, t.FeeModel)

	now := time.Now()
	rankingView := RankingView{
		TournamentID: tournamentID,
		ComputedAt:   now,
		FeeModel:     t.FeeModel,
		Rules:        t.Rules,
		Standings:    standings,
	}
	financeView := FinanceView{
		TournamentID: tournamentID,
		ComputedAt:   now,
		FeeModel:     t.FeeModel,
		Totals:       totals,
	}

	e.mu.Lock()
	previous, hadPrevious := e.rankings[tournamentID]
	e.rankings[tournamentID] = rankingView
	e.finances[tournamentID] = financeView
	e.mu.Unlock()

	e.metrics.IncRecomputeRuns()
	e.metrics.ObserveRecomputeDuration(time.Since(start).Seconds())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.mirror.Publish(ctx, mirror.CollectionRankings, tournamentID, rankingView); err != nil {
		log.Error("Failed to mirror ranking view", "error", err, "tournamentID", tournamentID)
	}
	if err := e.mirror.Publish(ctx, mirror.CollectionFinance, tournamentID, financeView); err != nil {
		log.Error("Failed to mirror finance view", "error", err, "tournamentID", tournamentID)
	}

	if hadPrevious && qualifiedSetChanged(previous.Standings, standings) {
		if err := e.notifier.SendRankingUpdate(t.Name, standings, t.Rules, false); err != nil {
			log.Error("Failed to send ranking update", "error", err, "tournamentID", tournamentID)
		}
	}

	log.Debug("Recomputed tournament views", "tournamentID", tournamentID, "members", len(snap.Members), "matches", len(snap.Matches), "duration", time.Since(start))
	return rankingView, financeView, nil
}

func (e *engine) Stop() {
	close(e.stop)
	e.workers.Wait()
}

// qualifiedSetChanged reports whether the set of qualified member IDs
// differs between two standings lists.
func qualifiedSetChanged(before, after []ranking.Standing) bool {
	prev := make(map[string]bool)
	for _, st := range before {
		if st.Qualified {
			prev[st.ID] = true
		}
	}
	count := 0
	for _, st := range after {
		if st.Qualified {
			if !prev[st.ID] {
				return true
			}
			count++
		}
	}
	return count != len(prev)
}
