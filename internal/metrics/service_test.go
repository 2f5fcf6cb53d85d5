package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	NewMetricsHandler(reg).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncMatchmakingSearches()
	s.IncMatchmakingSearches()
	s.IncChallengesCreated()
	s.AddChallengesExpired(3)
	s.AddBadgesAwarded(2)
	s.IncRatingsRecalculated()

	body := scrape(t, reg)
	assert.Contains(t, body, "pingponghub_matchmaking_searches_total 2")
	assert.Contains(t, body, "pingponghub_challenges_created_total 1")
	assert.Contains(t, body, "pingponghub_challenges_expired_total 3")
	assert.Contains(t, body, "pingponghub_badges_awarded_total 2")
	assert.Contains(t, body, "pingponghub_ratings_recalculated_total 1")
}

func TestMetricsHandler_ExposesRequestDurations(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.ObserveRequestDuration("match-making", 0.02)

	assert.Contains(t, scrape(t, reg), `pingponghub_function_duration_seconds_count{function="match-making"} 1`)
}
