package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 1e-9)
	assert.InDelta(t, 1.0/11, ExpectedScore(1200, 1600), 1e-9)
	assert.InDelta(t, 1.0, ExpectedScore(1200, 1600)+ExpectedScore(1600, 1200), 1e-9)
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name          string
		winner, loser int
		wantW, wantL  int
	}{
		{"equal ratings", 1500, 1500, 1516, 1484},
		{"upset", 1200, 1600, 1229, 1571},
		{"favourite wins", 1600, 1200, 1603, 1197},
		{"loser hits the floor", 110, 110, 126, 100},
		{"loser already below the floor", 120, 90, 135, 90},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, l := Apply(tc.winner, tc.loser)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantL, l)
		})
	}
}

func TestApply_Properties(t *testing.T) {
	for winner := 800; winner <= 2200; winner += 50 {
		for loser := 800; loser <= 2200; loser += 50 {
			w, l := Apply(winner, loser)
			assert.GreaterOrEqual(t, w-winner, 0)
			assert.LessOrEqual(t, l-loser, 0)
			assert.Equal(t, 0, (w-winner)+(l-loser), "zero-sum away from the floor")
		}
	}

	assert.Greater(t, Delta(1200, 1600), Delta(1600, 1200), "upsets move ratings more")
}
