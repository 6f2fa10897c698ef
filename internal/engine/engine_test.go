package engine_test

import (
	"testing"
	"time"

	"github.com/rcoelho/beachpro/internal/database"
	"github.com/rcoelho/beachpro/internal/engine"
	"github.com/rcoelho/beachpro/internal/metrics"
	"github.com/rcoelho/beachpro/internal/mirror"
	"github.com/rcoelho/beachpro/internal/notifier"
	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/rcoelho/beachpro/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHarness struct {
	store    tournament.Store
	engine   engine.Engine
	mirror   *mirror.Mock
	notifier *notifier.MockNotifier
	metrics  *metrics.Mock
}

func setupTestEngine(t *testing.T) (*testHarness, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	h := &testHarness{
		store:    tournament.New(db),
		mirror:   mirror.NewMock(),
		notifier: notifier.NewMock(),
		metrics:  metrics.NewMock(),
	}
	h.engine = engine.New(h.store, h.mirror, h.notifier, h.metrics)

	teardown := func() {
		h.engine.Stop()
		dbTeardown()
		db.Close()
	}
	return h, teardown
}

func TestRecomputePublishesViews(t *testing.T) {
	h, teardown := setupTestEngine(t)
	defer teardown()

	tourn, err := h.store.CreateTournament("Beach Open", "user-1", "Ana")
	require.NoError(t, err)
	_, err = h.store.AddMatch(tourn.ID, "user-1", tournament.MatchInput{
		Date: "2025-03-12", P1A: "Ana", P2A: "Bruno", Score1: 6, Score2: 2,
	})
	require.NoError(t, err)

	rankingView, financeView, err := h.engine.Recompute(tourn.ID)
	require.NoError(t, err)
	assert.Equal(t, tourn.ID, rankingView.TournamentID)
	require.Len(t, rankingView.Standings, 1)
	assert.Equal(t, "Ana", rankingView.Standings[0].Name)
	assert.Equal(t, 1, rankingView.Standings[0].Stats.Played)

	// One played, unpaid week at the default fee.
	assert.Equal(t, ranking.DefaultRules.WeeklyFee, financeView.Totals.Pending)
	assert.Zero(t, financeView.Totals.Collected)

	calls := h.mirror.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, mirror.CollectionRankings, calls[0].Collection)
	assert.Equal(t, mirror.CollectionFinance, calls[1].Collection)

	assert.Equal(t, 1, h.metrics.RecomputeRuns())
}

func TestRecomputeUnknownTournament(t *testing.T) {
	h, teardown := setupTestEngine(t)
	defer teardown()

	_, _, err := h.engine.Recompute("nope")
	assert.ErrorIs(t, err, tournament.ErrNotFound)
}

func TestRankingServesCachedView(t *testing.T) {
	h, teardown := setupTestEngine(t)
	defer teardown()

	tourn, err := h.store.CreateTournament("Beach Open", "user-1", "Ana")
	require.NoError(t, err)

	_, err = h.engine.Ranking(tourn.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, h.metrics.RecomputeRuns())

	// Second read hits the cache, no extra recomputation.
	_, err = h.engine.Ranking(tourn.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, h.metrics.RecomputeRuns())

	_, err = h.engine.Finance(tourn.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, h.metrics.RecomputeRuns())
}

func TestInvalidateRecomputesAsynchronously(t *testing.T) {
	h, teardown := setupTestEngine(t)
	defer teardown()

	tourn, err := h.store.CreateTournament("Beach Open", "user-1", "Ana")
	require.NoError(t, err)

	h.engine.Invalidate(tourn.ID)

	assert.Eventually(t, func() bool {
		return h.metrics.RecomputeRuns() >= 1
	}, 2*time.Second, 10*time.Millisecond, "expected an asynchronous recomputation")
}

func TestNotifierFiresWhenQualifiedSetChanges(t *testing.T) {
	h, teardown := setupTestEngine(t)
	defer teardown()

	tourn, err := h.store.CreateTournament("Beach Open", "user-1", "Ana")
	require.NoError(t, err)
	member, err := h.store.GetMemberByUser(tourn.ID, "user-1")
	require.NoError(t, err)

	// Baseline run: no previous view, so no notification yet.
	_, _, err = h.engine.Recompute(tourn.ID)
	require.NoError(t, err)
	assert.Empty(t, h.notifier.SendRankingUpdateCalls)

	// Ana wins enough matches in one paid week to qualify.
	for i := 0; i < 5; i++ {
		_, err = h.store.AddMatch(tourn.ID, "user-1", tournament.MatchInput{
			Date: "2025-03-12", P1A: "Ana", P2A: "Bruno", Score1: 6, Score2: 1,
		})
		require.NoError(t, err)
	}
	_, err = h.store.ToggleWeekPaid(tourn.ID, member.ID, "2025-03-10")
	require.NoError(t, err)

	rankingView, _, err := h.engine.Recompute(tourn.ID)
	require.NoError(t, err)
	require.Len(t, rankingView.Standings, 1)
	assert.True(t, rankingView.Standings[0].Qualified)

	require.Len(t, h.notifier.SendRankingUpdateCalls, 1)
	assert.Equal(t, "Beach Open", h.notifier.SendRankingUpdateCalls[0].TournamentName)

	// A further run with the same qualified set stays quiet.
	_, _, err = h.engine.Recompute(tourn.ID)
	require.NoError(t, err)
	assert.Len(t, h.notifier.SendRankingUpdateCalls, 1)
}
