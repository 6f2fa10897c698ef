package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RecomputeRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachpro_recompute_runs_total",
			Help: "The total number of ranking/finance view recomputations.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "beachpro_recompute_duration_seconds",
			Help:    "The duration of a single tournament view recomputation.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		MatchesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachpro_matches_registered_total",
			Help: "The total number of match results registered.",
		}),
		StoreWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachpro_store_writes_total",
			Help: "The total number of mutating store operations.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachpro_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachpro_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "beachpro_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RecomputeRuns,
		s.RecomputeDuration,
		s.MatchesRegistered,
		s.StoreWrites,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRecomputeRuns() {
	s.RecomputeRuns.Inc()
}

func (s *Service) ObserveRecomputeDuration(seconds float64) {
	s.RecomputeDuration.Observe(seconds)
}

func (s *Service) IncMatchesRegistered() {
	s.MatchesRegistered.Inc()
}

func (s *Service) IncStoreWrites() {
	s.StoreWrites.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
