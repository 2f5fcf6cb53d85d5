package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/profile"
)

// Service finds and ranks opponents for a player.
type Service struct {
	players    PlayerStore
	challenges ChallengeStore
	notifier   Notifier
	metrics    metrics.Metrics
	now        func() time.Time
}

// NewService creates a new matchmaking Service.
func NewService(players PlayerStore, challenges ChallengeStore, notifier Notifier, metrics metrics.Metrics) *Service {
	return &Service{
		players:    players,
		challenges: challenges,
		notifier:   notifier,
		metrics:    metrics,
		now:        time.Now,
	}
}

// FindOpponents returns up to ten ranked opponents for params.UserID and, when
// requested, challenges the best one. A failure to create the challenge is
// logged and leaves ChallengeCreated nil instead of failing the search.
func (s *Service) FindOpponents(ctx context.Context, params SearchParams) (*Result, error) {
	if params.RatingRange < 0 || params.MaxDistanceKm < 0 {
		return nil, fmt.Errorf("%w: rating_range and max_distance_km must not be negative", ErrInvalidParams)
	}
	s.metrics.IncMatchmakingSearches()

	player, err := s.players.GetPlayer(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	candidates, err := s.players.FindInRatingBand(ctx, player.ID, player.RatingMR-params.RatingRange, player.RatingMR+params.RatingRange, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	opponents := rank(*player, candidates, params, maxOpponents)
	log.Info("Ranked opponents", "user_id", player.ID, "candidates", len(candidates), "opponents", len(opponents))

	result := &Result{
		PlayerRating: player.RatingMR,
		SearchParams: params,
		Opponents:    opponents,
	}
	if params.AutoCreateChallenge && len(opponents) > 0 {
		result.ChallengeCreated = s.challengeTopOpponent(ctx, *player, opponents[0].Player, params.MatchType)
	}
	return result, nil
}

func (s *Service) challengeTopOpponent(ctx context.Context, player, opponent profile.Player, matchType string) *challenge.Challenge {
	now := s.now()
	pending, err := s.challenges.HasPending(ctx, player.ID, opponent.ID, now)
	if err != nil {
		log.Error("Failed to check for pending challenge", "error", err, "challenger", player.ID, "challenged", opponent.ID)
		return nil
	}
	if pending {
		log.Info("Pending challenge already exists", "challenger", player.ID, "challenged", opponent.ID)
		return nil
	}

	c := challenge.NewChallenge(player.ID, opponent.ID, matchType, now)
	if err := s.challenges.Create(ctx, c); err != nil {
		log.Error("Failed to create challenge", "error", err, "challenger", player.ID, "challenged", opponent.ID)
		return nil
	}
	s.metrics.IncChallengesCreated()

	if err := s.notifier.ChallengeCreated(ctx, c, player, opponent); err != nil {
		log.Warn("Failed to announce challenge", "error", err, "challenge_id", c.ID)
	}
	return c
}
