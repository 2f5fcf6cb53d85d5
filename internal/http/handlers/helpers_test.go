package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("encodes the body with the given status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, http.StatusCreated, map[string]any{"success": true})

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	})

	t.Run("unencodable body becomes a server error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, http.StatusOK, map[string]any{"distance_km": math.NaN()})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body.Error)
	})
}
