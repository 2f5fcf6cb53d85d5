package badge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const badgeColumns = `id, code, name, description, icon_url, rarity, criteria, threshold`

// New creates a new badge Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Evaluate runs in a single transaction so concurrent evaluations cannot
// award the same badge twice.
func (s *store) Evaluate(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var totalMatches, wins, ratingMR, level int
	err = tx.QueryRowContext(ctx, `SELECT total_matches, wins, rating_mr, level FROM players WHERE id = ?`, userID).
		Scan(&totalMatches, &wins, &ratingMR, &level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load player counters: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT b.id FROM badges b
		WHERE NOT EXISTS (SELECT 1 FROM user_badges ub WHERE ub.user_id = ? AND ub.badge_id = b.id)
		AND (
			(b.criteria = ? AND ? >= b.threshold) OR
			(b.criteria = ? AND ? >= b.threshold) OR
			(b.criteria = ? AND ? >= b.threshold) OR
			(b.criteria = ? AND ? >= b.threshold)
		)
		ORDER BY b.threshold, b.code
	`, userID,
		string(CriterionTotalMatches), totalMatches,
		string(CriterionWins), wins,
		string(CriterionRating), ratingMR,
		string(CriterionLevel), level,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible badges: %w", err)
	}
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan badge id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eligible badges: %w", err)
	}

	now := time.Now().Unix()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `INSERT INTO user_badges (user_id, badge_id, awarded_at) VALUES (?, ?, ?)`, userID, id, now); err != nil {
			return nil, fmt.Errorf("failed to award badge %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Debug("Evaluated badges", "user_id", userID, "awarded", len(ids))
	return ids, nil
}

func (s *store) GetBadges(ctx context.Context, badgeIDs []string) ([]Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(badgeIDs) == 0 {
		return []Badge{}, nil
	}

	placeholders := strings.Repeat("?,", len(badgeIDs)-1) + "?"
	args := make([]any, len(badgeIDs))
	for i, id := range badgeIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+badgeColumns+` FROM badges WHERE id IN (`+placeholders+`) ORDER BY threshold, code`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()
	return scanBadges(rows)
}

func (s *store) GetUserBadges(ctx context.Context, userID string) ([]Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.code, b.name, b.description, b.icon_url, b.rarity, b.criteria, b.threshold
		FROM badges b
		JOIN user_badges ub ON ub.badge_id = b.id
		WHERE ub.user_id = ?
		ORDER BY ub.awarded_at, b.code
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user badges: %w", err)
	}
	defer rows.Close()
	return scanBadges(rows)
}

// CreateBadge stores a badge definition. The code is derived from the name
// when it is not set.
func (s *store) CreateBadge(ctx context.Context, b Badge) (*Badge, error) {
	if !b.Criterion.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, b.Criterion)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Code == "" {
		b.Code = slug.Make(b.Name)
	}
	if b.Rarity == "" {
		b.Rarity = RarityCommon
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO badges (id, code, name, description, icon_url, rarity, criteria, threshold, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.Code, b.Name, b.Description, b.IconURL, b.Rarity, string(b.Criterion), b.Threshold, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create badge %s: %w", b.Code, err)
	}
	return &b, nil
}

func scanBadges(rows *sql.Rows) ([]Badge, error) {
	badges := []Badge{}
	for rows.Next() {
		var b Badge
		var criterion string
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Description, &b.IconURL, &b.Rarity, &criterion, &b.Threshold); err != nil {
			return nil, fmt.Errorf("failed to scan badge row: %w", err)
		}
		b.Criterion = Criterion(criterion)
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate badge rows: %w", err)
	}
	return badges, nil
}
