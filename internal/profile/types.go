package profile

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/pingponghub/internal/geo"
)

// ErrNotFound is returned when a player does not exist.
var ErrNotFound = errors.New("player not found")

// store handles all database operations for player profiles.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a PingpongHub profile as seen by the matchmaking and rating functions.
type Player struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	RatingMR     int      `json:"rating_mr"`
	Level        int      `json:"level"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	IsOnline     bool     `json:"is_online"`
	TotalMatches int      `json:"total_matches"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
}

// Location returns the player's coordinates, if both are known.
func (p Player) Location() (geo.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *p.Latitude, Lon: *p.Longitude}, true
}
