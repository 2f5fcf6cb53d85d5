package handlers

import (
	"net/http"

	"github.com/mauv0809/pingponghub/internal/processor"
	"github.com/mauv0809/pingponghub/internal/rating"
)

type calculateEloRequest struct {
	MatchID  string `json:"match_id"`
	WinnerID string `json:"winner_id"`
}

type calculateEloResponse struct {
	Success bool           `json:"success"`
	Result  *rating.Result `json:"result"`
}

func CalculateEloHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateEloRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.MatchID == "" || req.WinnerID == "" {
			writeError(w, http.StatusBadRequest, "match_id and winner_id are required")
			return
		}

		result, err := proc.Rate(r.Context(), req.MatchID, req.WinnerID)
		if err != nil {
			respondWithError(w, r, err, "ELO calculation failed", "match_id", req.MatchID, "winner_id", req.WinnerID)
			return
		}
		writeJSON(w, http.StatusOK, calculateEloResponse{Success: true, Result: result})
	}
}
