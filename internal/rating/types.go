package rating

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrWinnerNotInMatch = errors.New("winner did not play in this match")
	ErrAlreadyRated     = errors.New("match has already been rated")
	ErrMatchCompleted   = errors.New("match has already been completed")
	ErrTiedScore        = errors.New("a match cannot end in a tie")
	ErrWinnerMismatch   = errors.New("winner does not match the recorded result")
)

// store handles database operations for matches and ratings.
type store struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// Match is a game between two players.
type Match struct {
	ID           string     `json:"id"`
	Player1ID    string     `json:"player1_id"`
	Player2ID    string     `json:"player2_id"`
	Player1Score int        `json:"player1_score"`
	Player2Score int        `json:"player2_score"`
	WinnerID     *string    `json:"winner_id"`
	MatchType    string     `json:"match_type"`
	ChallengeID  *string    `json:"challenge_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	RatedAt      *time.Time `json:"rated_at,omitempty"`
}

// Loser returns the id of the participant who is not winnerID.
func (m *Match) Loser(winnerID string) (string, bool) {
	switch winnerID {
	case m.Player1ID:
		return m.Player2ID, true
	case m.Player2ID:
		return m.Player1ID, true
	}
	return "", false
}

// Result describes the rating change applied for a match.
type Result struct {
	MatchID            string `json:"match_id"`
	WinnerID           string `json:"winner_id"`
	LoserID            string `json:"loser_id"`
	WinnerRatingBefore int    `json:"winner_rating_before"`
	WinnerRatingAfter  int    `json:"winner_rating_after"`
	LoserRatingBefore  int    `json:"loser_rating_before"`
	LoserRatingAfter   int    `json:"loser_rating_after"`
	RatingChange       int    `json:"rating_change"`
}

// MatchCompletedEvent is published once a match has a final score.
type MatchCompletedEvent struct {
	MatchID     string    `msgpack:"match_id" json:"match_id"`
	WinnerID    string    `msgpack:"winner_id" json:"winner_id"`
	LoserID     string    `msgpack:"loser_id" json:"loser_id"`
	CompletedAt time.Time `msgpack:"completed_at" json:"completed_at"`
}
