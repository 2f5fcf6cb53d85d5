package rating

import "math"

const (
	// KFactor bounds the rating change of a single match.
	KFactor = 32
	// RatingFloor is the lowest rating a player can fall to.
	RatingFloor = 100
	// DefaultRating is the rating of a new player.
	DefaultRating = 1000
)

// ExpectedScore is the probability that a player rated winner beats a player rated loser.
func ExpectedScore(winner, loser int) float64 {
	return 1 / (1 + math.Pow(10, float64(loser-winner)/400))
}

// Delta is the number of points the winner gains. It is never negative.
func Delta(winner, loser int) int {
	d := int(math.Round(KFactor * (1 - ExpectedScore(winner, loser))))
	if d < 0 {
		return 0
	}
	return d
}

// Apply returns the new ratings of the winner and the loser. The loser never
// drops below RatingFloor, which is the only case where the change is not zero-sum.
func Apply(winner, loser int) (int, int) {
	d := Delta(winner, loser)
	newLoser := loser - d
	if newLoser < RatingFloor {
		newLoser = min(loser, RatingFloor)
	}
	return winner + d, newLoser
}
