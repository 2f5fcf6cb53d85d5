package badge

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/metrics"
)

// Service awards badges and announces them.
type Service struct {
	store    Store
	players  PlayerStore
	notifier Notifier
	metrics  metrics.Metrics
}

// NewService creates a new badge Service.
func NewService(store Store, players PlayerStore, notifier Notifier, metrics metrics.Metrics) *Service {
	return &Service{
		store:    store,
		players:  players,
		notifier: notifier,
		metrics:  metrics,
	}
}

// Award evaluates the user's eligibility and returns the badges granted by this call.
// Both slices of the result are empty, never nil, when nothing new was earned.
func (s *Service) Award(ctx context.Context, userID string) (*Award, error) {
	ids, err := s.store.Evaluate(ctx, userID)
	if err != nil {
		return nil, err
	}

	award := &Award{
		UserID:   userID,
		BadgeIDs: []string{},
		Badges:   []Badge{},
		At:       time.Now(),
	}
	if len(ids) == 0 {
		return award, nil
	}
	award.BadgeIDs = ids

	badges, err := s.store.GetBadges(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load awarded badges: %w", err)
	}
	award.Badges = badges
	s.metrics.AddBadgesAwarded(len(ids))

	s.announce(ctx, userID, badges)
	return award, nil
}

func (s *Service) announce(ctx context.Context, userID string, badges []Badge) {
	player, err := s.players.GetPlayer(ctx, userID)
	if err != nil {
		log.Warn("Failed to load player for badge announcement", "error", err, "user_id", userID)
		return
	}
	if err := s.notifier.BadgesAwarded(ctx, *player, badges); err != nil {
		log.Warn("Failed to announce badges", "error", err, "user_id", userID)
	}
}
