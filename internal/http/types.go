package http

import (
	"net/http"

	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/matchmaking"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/processor"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

type Server struct {
	Players        profile.PlayerStore
	Challenges     challenge.Store
	Ratings        rating.Store
	Matchmaking    *matchmaking.Service
	Badges         *badge.Service
	Processor      *processor.Processor
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	// InngestHandler serves the Inngest callback endpoint. It is nil when the
	// sweep runs on the in-process scheduler.
	InngestHandler http.Handler
	Router         *http.ServeMux
}
