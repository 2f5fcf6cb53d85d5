package badge

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// Criterion names the player counter a badge threshold applies to.
type Criterion string

const (
	CriterionTotalMatches Criterion = "total_matches"
	CriterionWins         Criterion = "wins"
	CriterionRating       Criterion = "rating_mr"
	CriterionLevel        Criterion = "level"
)

// RarityCommon is the rarity of badges that do not set one.
const RarityCommon = "common"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUnknownCriterion = errors.New("unknown badge criterion")
)

// store handles database operations for badges.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// Badge is an achievement definition.
type Badge struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconURL     string    `json:"icon_url"`
	Rarity      string    `json:"rarity"`
	Criterion   Criterion `json:"criteria"`
	Threshold   int       `json:"threshold"`
}

// Award is the outcome of an eligibility evaluation.
type Award struct {
	UserID   string    `json:"-"`
	BadgeIDs []string  `json:"awarded_badge_ids"`
	Badges   []Badge   `json:"awarded_badges"`
	At       time.Time `json:"-"`
}

// Valid reports whether c is a known criterion.
func (c Criterion) Valid() bool {
	switch c {
	case CriterionTotalMatches, CriterionWins, CriterionRating, CriterionLevel:
		return true
	}
	return false
}
