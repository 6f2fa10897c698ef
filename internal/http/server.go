package http

import (
	"net/http"

	"github.com/rcoelho/beachpro/internal/config"
	"github.com/rcoelho/beachpro/internal/engine"
	"github.com/rcoelho/beachpro/internal/metrics"
	"github.com/rcoelho/beachpro/internal/notifier"
	"github.com/rcoelho/beachpro/internal/pubsub"
	"github.com/rcoelho/beachpro/internal/tournament"
)

func NewServer(store tournament.Store, eng engine.Engine, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Engine:         eng,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		inflight:       make(map[string]bool),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, requireUser)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments", Chain(s.TournamentsHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("/tournaments/join", Chain(s.JoinTournamentHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("/members", Chain(s.ListMembersHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("/ranking", Chain(s.RankingHandler(), paramsMiddleware))
	s.Router.Handle("/finance", Chain(s.FinanceHandler(), paramsMiddleware))
	s.Router.Handle("/toggle-week-paid", Chain(s.ToggleWeekPaidHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("/rules", Chain(s.RulesHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("/member-role", Chain(s.MemberRoleHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("/notify-ranking", Chain(s.NotifyRankingHandler(), paramsMiddleware))
	s.Router.Handle("/notify-reminders", Chain(s.NotifyRemindersHandler(), paramsMiddleware))
	s.Router.Handle("/events", Chain(s.EventsHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/ranking", Chain(s.RankingCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
