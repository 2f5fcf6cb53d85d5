package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/rating"
)

type respondChallengeRequest struct {
	ChallengeID string `json:"challenge_id"`
	UserID      string `json:"user_id"`
	Accept      *bool  `json:"accept"`
}

type respondChallengeResponse struct {
	Success   bool                 `json:"success"`
	Challenge *challenge.Challenge `json:"challenge"`
	MatchID   *string              `json:"match_id,omitempty"`
}

// RespondChallengeHandler accepts or declines a challenge. Accepting schedules
// the match between the two players.
func RespondChallengeHandler(challenges challenge.Store, ratings rating.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req respondChallengeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.ChallengeID == "" || req.UserID == "" || req.Accept == nil {
			writeError(w, http.StatusBadRequest, "challenge_id, user_id and accept are required")
			return
		}

		c, err := challenges.Respond(r.Context(), req.ChallengeID, req.UserID, *req.Accept, time.Now())
		if err != nil {
			respondWithError(w, r, err, "Failed to respond to challenge", "challenge_id", req.ChallengeID, "user_id", req.UserID)
			return
		}

		resp := respondChallengeResponse{Success: true, Challenge: c}
		if c.Status == challenge.StatusAccepted {
			m, err := ratings.CreateMatch(r.Context(), c.ChallengerID, c.ChallengedID, c.MatchType, &c.ID)
			if err != nil {
				log.FromContext(r.Context()).Error("Failed to create match for accepted challenge", "error", err, "challenge_id", c.ID)
			} else {
				resp.MatchID = &m.ID
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
