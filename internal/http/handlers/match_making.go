package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/matchmaking"
)

type matchMakingRequest struct {
	UserID              string   `json:"user_id"`
	RatingRange         *int     `json:"rating_range"`
	MaxDistanceKm       *float64 `json:"max_distance_km"`
	MatchType           *string  `json:"match_type"`
	AutoCreateChallenge bool     `json:"auto_create_challenge"`
}

type matchMakingResponse struct {
	Success          bool                     `json:"success"`
	PlayerRating     int                      `json:"player_rating"`
	SearchParams     matchmaking.SearchParams `json:"search_params"`
	Opponents        []matchmaking.Opponent   `json:"opponents"`
	ChallengeCreated *challenge.Challenge     `json:"challenge_created"`
}

// params applies the request overrides on top of the default search.
func (req matchMakingRequest) params() matchmaking.SearchParams {
	params := matchmaking.NewSearchParams(req.UserID)
	if req.RatingRange != nil {
		params.RatingRange = *req.RatingRange
	}
	if req.MaxDistanceKm != nil {
		params.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.MatchType != nil && *req.MatchType != "" {
		params.MatchType = *req.MatchType
	}
	params.AutoCreateChallenge = req.AutoCreateChallenge
	return params
}

func MatchMakingHandler(svc *matchmaking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchMakingRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		result, err := svc.FindOpponents(r.Context(), req.params())
		if err != nil {
			respondWithError(w, r, err, "Matchmaking failed", "user_id", req.UserID)
			return
		}

		log.FromContext(r.Context()).Debug("Matchmaking finished", "user_id", req.UserID, "opponents", len(result.Opponents), "challenge", result.ChallengeCreated != nil)
		writeJSON(w, http.StatusOK, matchMakingResponse{
			Success:          true,
			PlayerRating:     result.PlayerRating,
			SearchParams:     result.SearchParams,
			Opponents:        result.Opponents,
			ChallengeCreated: result.ChallengeCreated,
		})
	}
}
