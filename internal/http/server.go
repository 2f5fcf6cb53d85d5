package http

import (
	"net/http"

	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/http/handlers"
	"github.com/mauv0809/pingponghub/internal/matchmaking"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/processor"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

func NewServer(players profile.PlayerStore, challenges challenge.Store, ratings rating.Store, matchmakingSvc *matchmaking.Service, badgeSvc *badge.Service, proc *processor.Processor, metricsSvc metrics.Metrics, metricsHandler http.Handler, inngestHandler http.Handler) *Server {
	server := &Server{
		Players:        players,
		Challenges:     challenges,
		Ratings:        ratings,
		Matchmaking:    matchmakingSvc,
		Badges:         badgeSvc,
		Processor:      proc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		InngestHandler: inngestHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Function endpoints share CORS, the POST-only check and timing.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/match-making", s.function("match-making", handlers.MatchMakingHandler(s.Matchmaking)))
	s.Router.Handle("/calculate-elo", s.function("calculate-elo", handlers.CalculateEloHandler(s.Processor)))
	s.Router.Handle("/award-badge", s.function("award-badge", handlers.AwardBadgeHandler(s.Badges)))
	s.Router.Handle("/complete-match", s.function("complete-match", handlers.CompleteMatchHandler(s.Processor)))
	s.Router.Handle("/respond-challenge", s.function("respond-challenge", handlers.RespondChallengeHandler(s.Challenges, s.Ratings)))
	s.Router.Handle("/presence", s.function("presence", handlers.PresenceHandler(s.Players)))
	s.Router.Handle("/events/match-completed", Chain(handlers.MatchCompletedHandler(s.Processor), paramsMiddleware, methodMiddleware(http.MethodPost)))
	if s.InngestHandler != nil {
		s.Router.Handle("/api/inngest", s.InngestHandler)
	}
}

// function wraps a browser-facing function endpoint.
func (s *Server) function(name string, h http.Handler) http.Handler {
	return Chain(h, paramsMiddleware, corsMiddleware, methodMiddleware(http.MethodPost), instrumentMiddleware(s.Metrics, name))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
