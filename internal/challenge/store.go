package challenge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const challengeColumns = `id, challenger_id, challenged_id, match_type, best_of, status, message, expires_at, created_at, responded_at`

// New creates a new challenge Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) HasPending(ctx context.Context, challengerID, challengedID string, now time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM challenges
		WHERE challenger_id = ? AND challenged_id = ? AND status = ? AND expires_at > ?
		LIMIT 1
	`, challengerID, challengedID, string(StatusPending), now.Unix()).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check pending challenge: %w", err)
	}
	return true, nil
}

func (s *store) Create(ctx context.Context, c *Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO challenges (id, challenger_id, challenged_id, match_type, best_of, status, message, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.ChallengerID, c.ChallengedID, c.MatchType, c.BestOf, string(c.Status), c.Message, c.ExpiresAt.Unix(), c.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}

	log.Info("Created challenge", "id", c.ID, "challenger", c.ChallengerID, "challenged", c.ChallengedID)
	return nil
}

func (s *store) Get(ctx context.Context, challengeID string) (*Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := scanChallenge(s.db.QueryRowContext(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = ?`, challengeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return c, nil
}

func (s *store) Respond(ctx context.Context, challengeID, userID string, accept bool, now time.Time) (*Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := scanChallenge(tx.QueryRowContext(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = ?`, challengeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if c.ChallengedID != userID {
		return nil, ErrForbidden
	}
	if c.Status != StatusPending {
		return nil, ErrNotPending
	}

	if c.IsExpired(now) {
		// Record the expiry the sweeper has not caught up with yet.
		if _, err := tx.ExecContext(ctx, `UPDATE challenges SET status = ? WHERE id = ?`, string(StatusExpired), c.ID); err != nil {
			return nil, fmt.Errorf("failed to expire challenge: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit challenge expiry: %w", err)
		}
		log.Info("Challenge expired before response", "id", c.ID)
		return nil, ErrNotPending
	}

	status := StatusDeclined
	if accept {
		status = StatusAccepted
	}
	if _, err := tx.ExecContext(ctx, `UPDATE challenges SET status = ?, responded_at = ? WHERE id = ?`, string(status), now.Unix(), c.ID); err != nil {
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit challenge response: %w", err)
	}

	c.Status = status
	respondedAt := time.Unix(now.Unix(), 0)
	c.RespondedAt = &respondedAt
	log.Info("Challenge answered", "id", c.ID, "status", status)
	return c, nil
}

func (s *store) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE challenges SET status = ?
		WHERE status = ? AND expires_at <= ?
	`, string(StatusExpired), string(StatusPending), now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to expire challenges: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func scanChallenge(scanner interface{ Scan(...any) error }) (*Challenge, error) {
	var c Challenge
	var status string
	var message sql.NullString
	var expiresAt, createdAt int64
	var respondedAt sql.NullInt64

	err := scanner.Scan(&c.ID, &c.ChallengerID, &c.ChallengedID, &c.MatchType, &c.BestOf, &status, &message, &expiresAt, &createdAt, &respondedAt)
	if err != nil {
		return nil, err
	}
	c.Status = Status(status)
	c.ExpiresAt = time.Unix(expiresAt, 0)
	c.CreatedAt = time.Unix(createdAt, 0)
	if message.Valid {
		c.Message = &message.String
	}
	if respondedAt.Valid {
		t := time.Unix(respondedAt.Int64, 0)
		c.RespondedAt = &t
	}
	return &c, nil
}
