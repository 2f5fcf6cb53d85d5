package matchmaking

import (
	"math"
	"sort"

	"github.com/mauv0809/pingponghub/internal/geo"
	"github.com/mauv0809/pingponghub/internal/profile"
)

const (
	baseScore          = 100.0
	ratingPenalty      = 30.0
	onlineBonus        = 20.0
	levelPenalty       = 2.0
	activityBonus      = 10.0
	activityMinMatches = 10
)

// Score rates how good a fit candidate is for player. The result is floored at 0
// and intentionally has no upper bound.
func Score(player, candidate profile.Player, ratingRange int) float64 {
	score := baseScore

	if ratingRange > 0 {
		ratingDiff := absInt(candidate.RatingMR - player.RatingMR)
		score -= float64(ratingDiff) / float64(ratingRange) * ratingPenalty
	}
	if candidate.IsOnline {
		score += onlineBonus
	}
	score -= levelPenalty * float64(absInt(candidate.Level-player.Level))
	if candidate.TotalMatches > activityMinMatches {
		score += activityBonus
	}

	return math.Max(0, score)
}

// rank scores and filters candidates and returns at most limit opponents, best first.
// Candidates without coordinates are never dropped by the distance filter.
func rank(player profile.Player, candidates []profile.Player, params SearchParams, limit int) []Opponent {
	origin, hasOrigin := player.Location()
	filterByDistance := hasOrigin && params.MaxDistanceKm > 0

	opponents := make([]Opponent, 0, len(candidates))
	for _, c := range candidates {
		var distance *float64
		if loc, ok := c.Location(); ok && hasOrigin {
			d := geo.DistanceKm(origin, loc)
			if filterByDistance && d > params.MaxDistanceKm {
				continue
			}
			distance = &d
		}
		opponents = append(opponents, Opponent{
			Player:     c,
			DistanceKm: distance,
			RatingDiff: absInt(c.RatingMR - player.RatingMR),
			Score:      Score(player, c, params.RatingRange),
		})
	}

	sort.SliceStable(opponents, func(i, j int) bool {
		return opponents[i].Score > opponents[j].Score
	})
	if len(opponents) > limit {
		opponents = opponents[:limit]
	}
	return opponents
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
