package challenge

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a challenge.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
	StatusExpired  Status = "EXPIRED"
)

const (
	// DefaultBestOf is the number of games for challenges created by matchmaking.
	DefaultBestOf = 3
	// DefaultTTL is how long a challenge stays open.
	DefaultTTL = 24 * time.Hour
)

var (
	ErrNotFound   = errors.New("challenge not found")
	ErrNotPending = errors.New("challenge is no longer pending")
	ErrForbidden  = errors.New("only the challenged player can respond")
)

// store handles database operations for challenges.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Challenge is an invitation from one player to another to play a match.
type Challenge struct {
	ID           string     `json:"id"`
	ChallengerID string     `json:"challenger_id"`
	ChallengedID string     `json:"challenged_id"`
	MatchType    string     `json:"match_type"`
	BestOf       int        `json:"best_of"`
	Status       Status     `json:"status"`
	Message      *string    `json:"message,omitempty"`
	ExpiresAt    time.Time  `json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
}

// NewChallenge builds a pending best-of-3 challenge expiring DefaultTTL after now.
func NewChallenge(challengerID, challengedID, matchType string, now time.Time) *Challenge {
	return &Challenge{
		ID:           uuid.New().String(),
		ChallengerID: challengerID,
		ChallengedID: challengedID,
		MatchType:    matchType,
		BestOf:       DefaultBestOf,
		Status:       StatusPending,
		ExpiresAt:    now.Add(DefaultTTL),
		CreatedAt:    now,
	}
}

// IsExpired reports whether the challenge can no longer be answered at now.
func (c *Challenge) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
