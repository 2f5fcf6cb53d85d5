package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/http/handlers"
	"github.com/stretchr/testify/assert"
)

func TestParamsMiddleware(t *testing.T) {
	globalLevel := log.GetLevel()

	t.Run("verbose raises only the request logger", func(t *testing.T) {
		var requestLevel log.Level
		h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLevel = log.FromContext(r.Context()).GetLevel()
			assert.Equal(t, globalLevel, log.GetLevel())
		}), paramsMiddleware)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/presence?verbose=true", nil))

		assert.Equal(t, log.DebugLevel, requestLevel)
		assert.Equal(t, globalLevel, log.GetLevel())
	})

	t.Run("dry run is carried in the context", func(t *testing.T) {
		var dryRun bool
		h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dryRun = handlers.IsDryRunFromContext(r)
		}), paramsMiddleware)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/complete-match?dry_run=true", nil))
		assert.True(t, dryRun)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/complete-match", nil))
		assert.False(t, dryRun)
	})
}
