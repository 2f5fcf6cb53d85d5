package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const playerColumns = `id, username, rating_mr, level, latitude, longitude, is_online, total_matches, wins, losses`

// New creates a new PlayerStore.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

// GetPlayer loads a single player. It returns ErrNotFound if the player does not exist.
func (s *store) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ?`, playerID)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}
	return player, nil
}

// GetPlayers retrieves the players with the given IDs. Unknown IDs are skipped.
func (s *store) GetPlayers(ctx context.Context, playerIDs []string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(playerIDs) == 0 {
		return []Player{}, nil
	}

	placeholders := strings.Repeat("?,", len(playerIDs)-1) + "?"
	args := make([]any, len(playerIDs))
	for i, id := range playerIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// FindInRatingBand returns candidate opponents in the rating window.
func (s *store) FindInRatingBand(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+playerColumns+`
		FROM players
		WHERE id != ? AND rating_mr BETWEEN ? AND ?
		LIMIT ?
	`, excludeID, minRating, maxRating, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	players, err := scanPlayers(rows)
	if err != nil {
		return nil, err
	}
	log.Debug("Loaded rating band", "exclude", excludeID, "min", minRating, "max", maxRating, "count", len(players))
	return players, nil
}

// UpsertPlayer inserts a player or updates the profile fields of an existing one.
// Match counters are owned by the rating routine and are only set on insert.
func (s *store) UpsertPlayer(ctx context.Context, player Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, username, rating_mr, level, latitude, longitude, is_online, total_matches, wins, losses, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			level = excluded.level,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			is_online = excluded.is_online,
			updated_at = excluded.updated_at
	`, player.ID, player.Username, player.RatingMR, player.Level, player.Latitude, player.Longitude,
		player.IsOnline, player.TotalMatches, player.Wins, player.Losses, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert player %s: %w", player.ID, err)
	}
	return nil
}

// SetOnline flips the online flag of a player.
func (s *store) SetOnline(ctx context.Context, playerID string, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE players SET is_online = ?, updated_at = ? WHERE id = ?`, online, time.Now().Unix(), playerID)
	if err != nil {
		return fmt.Errorf("failed to update online status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPlayers(rows *sql.Rows) ([]Player, error) {
	players := []Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player rows: %w", err)
	}
	return players, nil
}

// scanPlayer is a helper function to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var lat, lon sql.NullFloat64
	err := scanner.Scan(&p.ID, &p.Username, &p.RatingMR, &p.Level, &lat, &lon, &p.IsOnline, &p.TotalMatches, &p.Wins, &p.Losses)
	if err != nil {
		return nil, err
	}
	if lat.Valid {
		p.Latitude = &lat.Float64
	}
	if lon.Valid {
		p.Longitude = &lon.Float64
	}
	return &p, nil
}
