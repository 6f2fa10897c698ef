package http

import (
	"net/http"
	"sync"

	"github.com/rcoelho/beachpro/internal/config"
	"github.com/rcoelho/beachpro/internal/engine"
	"github.com/rcoelho/beachpro/internal/metrics"
	"github.com/rcoelho/beachpro/internal/notifier"
	"github.com/rcoelho/beachpro/internal/pubsub"
	"github.com/rcoelho/beachpro/internal/tournament"
)

type Server struct {
	Store          tournament.Store
	Engine         engine.Engine
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient

	// One match registration per user at a time; a second submit while the
	// first is in flight is rejected, not queued.
	submitMu sync.Mutex
	inflight map[string]bool
}
