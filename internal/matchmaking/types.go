package matchmaking

import (
	"errors"

	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/profile"
)

const (
	DefaultRatingRange   = 100
	DefaultMaxDistanceKm = 10.0
	DefaultMatchType     = "casual"

	// candidateLimit caps the rating-band query.
	candidateLimit = 50
	// maxOpponents caps the ranked result.
	maxOpponents = 10
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidParams  = errors.New("invalid search parameters")
)

// SearchParams describes an opponent search for a requesting player.
type SearchParams struct {
	UserID              string  `json:"-"`
	RatingRange         int     `json:"rating_range"`
	MaxDistanceKm       float64 `json:"max_distance_km"`
	MatchType           string  `json:"match_type"`
	AutoCreateChallenge bool    `json:"-"`
}

// NewSearchParams returns the default search for userID.
func NewSearchParams(userID string) SearchParams {
	return SearchParams{
		UserID:        userID,
		RatingRange:   DefaultRatingRange,
		MaxDistanceKm: DefaultMaxDistanceKm,
		MatchType:     DefaultMatchType,
	}
}

// Opponent is a ranked candidate. DistanceKm is nil when either side has no coordinates.
type Opponent struct {
	profile.Player
	DistanceKm *float64 `json:"distance_km"`
	RatingDiff int      `json:"rating_diff"`
	Score      float64  `json:"score"`
}

// Result is the outcome of a search.
type Result struct {
	PlayerRating     int                  `json:"player_rating"`
	SearchParams     SearchParams         `json:"search_params"`
	Opponents        []Opponent           `json:"opponents"`
	ChallengeCreated *challenge.Challenge `json:"challenge_created"`
}
