package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchmakingSearches()
	IncChallengesCreated()
	AddChallengesExpired(n int)
	IncRatingsRecalculated()
	AddBadgesAwarded(n int)
	IncNotifSent()
	IncNotifFailed()
	ObserveRequestDuration(function string, seconds float64)
	SetStartupTime(duration float64)
}
