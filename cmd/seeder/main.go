package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/config"
	"github.com/mauv0809/pingponghub/internal/database"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

const (
	numPlayers = 40
	numMatches = 200

	// Copenhagen city centre.
	baseLat = 55.6761
	baseLon = 12.5683
)

var catalogue = []badge.Badge{
	{Name: "First Serve", Description: "Play your first match", Criterion: badge.CriterionTotalMatches, Threshold: 1},
	{Name: "Regular", Description: "Play 10 matches", Criterion: badge.CriterionTotalMatches, Threshold: 10},
	{Name: "Veteran", Description: "Play 50 matches", Criterion: badge.CriterionTotalMatches, Threshold: 50, Rarity: "rare"},
	{Name: "First Win", Description: "Win a match", Criterion: badge.CriterionWins, Threshold: 1},
	{Name: "Winning Streak", Description: "Win 10 matches", Criterion: badge.CriterionWins, Threshold: 10, Rarity: "rare"},
	{Name: "Rising Star", Description: "Reach a rating of 1100", Criterion: badge.CriterionRating, Threshold: 1100},
	{Name: "Table Master", Description: "Reach a rating of 1400", Criterion: badge.CriterionRating, Threshold: 1400, Rarity: "epic"},
	{Name: "Seasoned", Description: "Reach level 5", Criterion: badge.CriterionLevel, Threshold: 5},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()
	ctx := context.Background()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	players := profile.New(db)
	badges := badge.New(db)
	ratings := rating.New(db)

	for _, b := range catalogue {
		if _, err := badges.CreateBadge(ctx, b); err != nil {
			log.Warn("Skipping badge", "name", b.Name, "error", err)
		}
	}
	log.Info("Ensured badge catalogue exists.", "count", len(catalogue))

	ids := make([]string, 0, numPlayers)
	for i := range numPlayers {
		lat := baseLat + (rand.Float64()-0.5)*0.3
		lon := baseLon + (rand.Float64()-0.5)*0.5
		p := profile.Player{
			ID:        uuid.NewString(),
			Username:  fmt.Sprintf("seeder-player-%02d", i+1),
			RatingMR:  rating.DefaultRating + rand.Intn(401) - 200,
			Level:     1 + rand.Intn(10),
			Latitude:  &lat,
			Longitude: &lon,
			IsOnline:  rand.Intn(2) == 0,
		}
		if err := players.UpsertPlayer(ctx, p); err != nil {
			log.Fatalf("Failed to insert player %s: %s", p.Username, err)
		}
		ids = append(ids, p.ID)
	}
	log.Info("Inserted players.", "count", len(ids))

	log.Info("Preparing to play seeded matches...", "total", numMatches)
	startTime := time.Now()
	for i := range numMatches {
		p1 := ids[rand.Intn(len(ids))]
		p2 := ids[rand.Intn(len(ids))]
		for p2 == p1 {
			p2 = ids[rand.Intn(len(ids))]
		}
		m, err := ratings.CreateMatch(ctx, p1, p2, "casual", nil)
		if err != nil {
			log.Fatalf("Failed to create match: %s", err)
		}
		s1, s2 := 11, rand.Intn(10)
		if rand.Intn(2) == 0 {
			s1, s2 = s2, s1
		}
		completed, err := ratings.CompleteMatch(ctx, m.ID, s1, s2)
		if err != nil {
			log.Fatalf("Failed to complete match %s: %s", m.ID, err)
		}
		if _, err := ratings.Recalculate(ctx, m.ID, *completed.WinnerID); err != nil {
			log.Fatalf("Failed to rate match %s: %s", m.ID, err)
		}
		if (i+1)%50 == 0 {
			log.Info("Played matches", "completed", i+1, "total", numMatches)
		}
	}

	awarded := 0
	for _, id := range ids {
		newBadges, err := badges.Evaluate(ctx, id)
		if err != nil {
			log.Fatalf("Failed to evaluate badges for %s: %s", id, err)
		}
		awarded += len(newBadges)
	}

	log.Info("Successfully seeded database.", "duration", time.Since(startTime), "badges_awarded", awarded)
}
