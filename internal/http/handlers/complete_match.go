package handlers

import (
	"net/http"

	"github.com/mauv0809/pingponghub/internal/processor"
	"github.com/mauv0809/pingponghub/internal/rating"
)

type completeMatchRequest struct {
	MatchID      string `json:"match_id"`
	Player1Score *int   `json:"player1_score"`
	Player2Score *int   `json:"player2_score"`
}

type completeMatchResponse struct {
	Success      bool          `json:"success"`
	Match        *rating.Match `json:"match"`
	RatingQueued bool          `json:"rating_queued"`
}

func CompleteMatchHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req completeMatchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.MatchID == "" || req.Player1Score == nil || req.Player2Score == nil {
			writeError(w, http.StatusBadRequest, "match_id, player1_score and player2_score are required")
			return
		}
		if *req.Player1Score < 0 || *req.Player2Score < 0 {
			writeError(w, http.StatusBadRequest, "scores must not be negative")
			return
		}

		m, queued, err := proc.CompleteMatch(r.Context(), req.MatchID, *req.Player1Score, *req.Player2Score, IsDryRunFromContext(r))
		if err != nil {
			respondWithError(w, r, err, "Failed to complete match", "match_id", req.MatchID)
			return
		}
		writeJSON(w, http.StatusOK, completeMatchResponse{Success: true, Match: m, RatingQueued: queued})
	}
}
