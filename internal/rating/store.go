package rating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const matchColumns = `id, player1_id, player2_id, player1_score, player2_score, winner_id, match_type, challenge_id, created_at, completed_at, rated_at`

// New creates a new rating Store.
func New(db *sql.DB) Store {
	return &store{
		db:  db,
		now: time.Now,
	}
}

func (s *store) CreateMatch(ctx context.Context, player1ID, player2ID, matchType string, challengeID *string) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &Match{
		ID:          uuid.New().String(),
		Player1ID:   player1ID,
		Player2ID:   player2ID,
		MatchType:   matchType,
		ChallengeID: challengeID,
		CreatedAt:   s.now().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches (id, player1_id, player2_id, match_type, challenge_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.Player1ID, m.Player2ID, m.MatchType, m.ChallengeID, m.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("Created match", "id", m.ID, "player1", player1ID, "player2", player2ID)
	return m, nil
}

func (s *store) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := scanMatch(s.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = ?`, matchID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

func (s *store) CompleteMatch(ctx context.Context, matchID string, player1Score, player2Score int) (*Match, error) {
	if player1Score == player2Score {
		return nil, ErrTiedScore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := scanMatch(tx.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = ?`, matchID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if m.CompletedAt != nil {
		return nil, ErrMatchCompleted
	}

	winnerID := m.Player1ID
	if player2Score > player1Score {
		winnerID = m.Player2ID
	}
	completedAt := s.now().Truncate(time.Second)

	_, err = tx.ExecContext(ctx, `
		UPDATE matches
		SET player1_score = ?, player2_score = ?, winner_id = ?, completed_at = ?
		WHERE id = ?
	`, player1Score, player2Score, winnerID, completedAt.Unix(), matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete match: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.Player1Score = player1Score
	m.Player2Score = player2Score
	m.WinnerID = &winnerID
	m.CompletedAt = &completedAt
	log.Info("Completed match", "id", matchID, "winner", winnerID, "score", fmt.Sprintf("%d-%d", player1Score, player2Score))
	return m, nil
}

func (s *store) Recalculate(ctx context.Context, matchID, winnerID string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := scanMatch(tx.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = ?`, matchID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	loserID, ok := m.Loser(winnerID)
	if !ok {
		return nil, ErrWinnerNotInMatch
	}
	if m.RatedAt != nil {
		return nil, ErrAlreadyRated
	}
	if m.WinnerID != nil && *m.WinnerID != winnerID {
		return nil, ErrWinnerMismatch
	}

	var winnerBefore, loserBefore int
	if err := tx.QueryRowContext(ctx, `SELECT rating_mr FROM players WHERE id = ?`, winnerID).Scan(&winnerBefore); err != nil {
		return nil, fmt.Errorf("failed to load winner rating: %w", err)
	}
	if err := tx.QueryRowContext(ctx, `SELECT rating_mr FROM players WHERE id = ?`, loserID).Scan(&loserBefore); err != nil {
		return nil, fmt.Errorf("failed to load loser rating: %w", err)
	}

	winnerAfter, loserAfter := Apply(winnerBefore, loserBefore)
	result := &Result{
		MatchID:            matchID,
		WinnerID:           winnerID,
		LoserID:            loserID,
		WinnerRatingBefore: winnerBefore,
		WinnerRatingAfter:  winnerAfter,
		LoserRatingBefore:  loserBefore,
		LoserRatingAfter:   loserAfter,
		RatingChange:       winnerAfter - winnerBefore,
	}
	now := s.now().Unix()

	_, err = tx.ExecContext(ctx, `
		UPDATE players SET rating_mr = ?, total_matches = total_matches + 1, wins = wins + 1, updated_at = ?
		WHERE id = ?
	`, winnerAfter, now, winnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to update winner: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE players SET rating_mr = ?, total_matches = total_matches + 1, losses = losses + 1, updated_at = ?
		WHERE id = ?
	`, loserAfter, now, loserID)
	if err != nil {
		return nil, fmt.Errorf("failed to update loser: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE matches SET winner_id = ?, rated_at = ?, completed_at = COALESCE(completed_at, ?)
		WHERE id = ?
	`, winnerID, now, now, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark match as rated: %w", err)
	}

	historyStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rating_history (id, player_id, match_id, opponent_id, rating_before, rating_after, rating_change, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rating history statement: %w", err)
	}
	defer historyStmt.Close()

	entries := []struct {
		player, opponent string
		before, after    int
	}{
		{winnerID, loserID, winnerBefore, winnerAfter},
		{loserID, winnerID, loserBefore, loserAfter},
	}
	for _, e := range entries {
		if _, err := historyStmt.ExecContext(ctx, uuid.New().String(), e.player, matchID, e.opponent, e.before, e.after, e.after-e.before, now); err != nil {
			return nil, fmt.Errorf("failed to insert rating history for %s: %w", e.player, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Recalculated ratings", "match_id", matchID, "winner", winnerID, "change", result.RatingChange)
	return result, nil
}

// scanMatch is a helper function to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var winnerID, challengeID sql.NullString
	var createdAt int64
	var completedAt, ratedAt sql.NullInt64
	err := scanner.Scan(&m.ID, &m.Player1ID, &m.Player2ID, &m.Player1Score, &m.Player2Score,
		&winnerID, &m.MatchType, &challengeID, &createdAt, &completedAt, &ratedAt)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = time.Unix(createdAt, 0)
	if winnerID.Valid {
		m.WinnerID = &winnerID.String
	}
	if challengeID.Valid {
		m.ChallengeID = &challengeID.String
	}
	if completedAt.Valid {
		t := time.Unix(completedAt.Int64, 0)
		m.CompletedAt = &t
	}
	if ratedAt.Valid {
		t := time.Unix(ratedAt.Int64, 0)
		m.RatedAt = &t
	}
	return &m, nil
}
