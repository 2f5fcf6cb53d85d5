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
		MatchmakingSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_matchmaking_searches_total",
			Help: "The total number of opponent searches served.",
		}),
		ChallengesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_challenges_created_total",
			Help: "The total number of challenges created by matchmaking.",
		}),
		ChallengesExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_challenges_expired_total",
			Help: "The total number of pending challenges marked as expired.",
		}),
		RatingsRecalculated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_ratings_recalculated_total",
			Help: "The total number of matches whose ELO ratings were applied.",
		}),
		BadgesAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_badges_awarded_total",
			Help: "The total number of badges granted to players.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingponghub_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pingponghub_function_duration_seconds",
			Help:    "The duration of function requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"function"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pingponghub_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchmakingSearches,
		s.ChallengesCreated,
		s.ChallengesExpired,
		s.RatingsRecalculated,
		s.BadgesAwarded,
		s.NotifSent,
		s.NotifFailed,
		s.RequestDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchmakingSearches() {
	s.MatchmakingSearches.Inc()
}

func (s *Service) IncChallengesCreated() {
	s.ChallengesCreated.Inc()
}

func (s *Service) AddChallengesExpired(n int) {
	s.ChallengesExpired.Add(float64(n))
}

func (s *Service) IncRatingsRecalculated() {
	s.RatingsRecalculated.Inc()
}

func (s *Service) AddBadgesAwarded(n int) {
	s.BadgesAwarded.Add(float64(n))
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveRequestDuration(function string, seconds float64) {
	s.RequestDuration.WithLabelValues(function).Observe(seconds)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
