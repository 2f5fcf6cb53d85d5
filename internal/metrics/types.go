package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	MatchmakingSearches prometheus.Counter
	ChallengesCreated   prometheus.Counter
	ChallengesExpired   prometheus.Counter
	RatingsRecalculated prometheus.Counter
	BadgesAwarded       prometheus.Counter
	NotifSent           prometheus.Counter
	NotifFailed         prometheus.Counter
	RequestDuration     *prometheus.HistogramVec
	StartupTimeSeconds  prometheus.Gauge
}
