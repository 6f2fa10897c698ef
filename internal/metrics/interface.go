package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRecomputeRuns()
	ObserveRecomputeDuration(seconds float64)
	IncMatchesRegistered()
	IncStoreWrites()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(seconds float64)
}
