package handlers

import (
	"net/http"

	"github.com/mauv0809/pingponghub/internal/badge"
)

type awardBadgeRequest struct {
	UserID string `json:"user_id"`
}

type awardBadgeResponse struct {
	Success         bool          `json:"success"`
	AwardedBadgeIDs []string      `json:"awarded_badge_ids"`
	AwardedBadges   []badge.Badge `json:"awarded_badges"`
}

func AwardBadgeHandler(svc *badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req awardBadgeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		award, err := svc.Award(r.Context(), req.UserID)
		if err != nil {
			respondWithError(w, r, err, "Badge evaluation failed", "user_id", req.UserID)
			return
		}
		writeJSON(w, http.StatusOK, awardBadgeResponse{
			Success:         true,
			AwardedBadgeIDs: award.BadgeIDs,
			AwardedBadges:   award.Badges,
		})
	}
}
