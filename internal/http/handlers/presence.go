package handlers

import (
	"net/http"

	"github.com/mauv0809/pingponghub/internal/profile"
)

type presenceRequest struct {
	UserID string `json:"user_id"`
	Online bool   `json:"online"`
}

func PresenceHandler(players profile.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req presenceRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		if err := players.SetOnline(r.Context(), req.UserID, req.Online); err != nil {
			respondWithError(w, r, err, "Failed to update presence", "user_id", req.UserID)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "is_online": req.Online})
	}
}
