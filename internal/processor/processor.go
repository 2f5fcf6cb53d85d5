package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/pubsub"
	"github.com/mauv0809/pingponghub/internal/rating"
)

// New creates a new Processor.
func New(ratings RatingStore, badges BadgeAwarder, players PlayerStore, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		ratings:  ratings,
		badges:   badges,
		players:  players,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// CompleteMatch records the final score and publishes a match-completed event.
// The returned flag reports whether the event was queued; a publish failure
// does not undo the recorded score.
func (p *Processor) CompleteMatch(ctx context.Context, matchID string, player1Score, player2Score int, dryRun bool) (*rating.Match, bool, error) {
	m, err := p.ratings.CompleteMatch(ctx, matchID, player1Score, player2Score)
	if err != nil {
		return nil, false, err
	}

	loserID, _ := m.Loser(*m.WinnerID)
	evt := rating.MatchCompletedEvent{
		MatchID:     m.ID,
		WinnerID:    *m.WinnerID,
		LoserID:     loserID,
		CompletedAt: *m.CompletedAt,
	}
	if dryRun {
		log.Info("Dry run, not publishing match completion", "matchID", m.ID)
		return m, false, nil
	}
	if err := p.pubsub.SendMessage(ctx, pubsub.EventMatchCompleted, evt); err != nil {
		log.Error("Failed to publish match completion", "error", err, "matchID", m.ID)
		return m, false, nil
	}
	return m, true, nil
}

// Rate applies the rating change for a match and announces it.
func (p *Processor) Rate(ctx context.Context, matchID, winnerID string) (*rating.Result, error) {
	result, err := p.ratings.Recalculate(ctx, matchID, winnerID)
	if err != nil {
		return nil, err
	}
	p.metrics.IncRatingsRecalculated()
	p.announce(ctx, result)
	return result, nil
}

func (p *Processor) announce(ctx context.Context, result *rating.Result) {
	players, err := p.players.GetPlayers(ctx, []string{result.WinnerID, result.LoserID})
	if err != nil {
		log.Warn("Failed to load players for rating announcement", "error", err, "matchID", result.MatchID)
		return
	}
	byID := make(map[string]int, len(players))
	for i, pl := range players {
		byID[pl.ID] = i
	}
	wi, okW := byID[result.WinnerID]
	li, okL := byID[result.LoserID]
	if !okW || !okL {
		log.Warn("Players missing for rating announcement", "matchID", result.MatchID)
		return
	}
	if err := p.notifier.MatchRated(ctx, result, players[wi], players[li]); err != nil {
		log.Warn("Failed to announce rating", "error", err, "matchID", result.MatchID)
	}
}

// HandleMatchCompleted rates the match and evaluates badges for both players.
// Events that can never succeed are acknowledged so they are not redelivered.
func (p *Processor) HandleMatchCompleted(ctx context.Context, evt rating.MatchCompletedEvent) error {
	log.Info("Processing completed match", "matchID", evt.MatchID, "winner", evt.WinnerID)

	_, err := p.Rate(ctx, evt.MatchID, evt.WinnerID)
	switch {
	case errors.Is(err, rating.ErrAlreadyRated):
		log.Info("Match already rated, skipping", "matchID", evt.MatchID)
		return nil
	case errors.Is(err, rating.ErrMatchNotFound), errors.Is(err, rating.ErrWinnerNotInMatch),
		errors.Is(err, rating.ErrWinnerMismatch):
		log.Warn("Dropping unprocessable match event", "error", err, "matchID", evt.MatchID)
		return nil
	case err != nil:
		return fmt.Errorf("failed to rate match %s: %w", evt.MatchID, err)
	}

	// Badge evaluation is cumulative, so a failure here is picked up after the player's next match.
	for _, userID := range []string{evt.WinnerID, evt.LoserID} {
		award, err := p.badges.Award(ctx, userID)
		if err != nil {
			log.Error("Failed to award badges", "error", err, "userID", userID, "matchID", evt.MatchID)
			continue
		}
		if len(award.BadgeIDs) > 0 {
			log.Info("Awarded badges", "userID", userID, "count", len(award.BadgeIDs))
		}
	}
	return nil
}

// HandleMatchCompletedMessage decodes a match-completed payload and processes it.
func (p *Processor) HandleMatchCompletedMessage(ctx context.Context, data []byte) error {
	var evt rating.MatchCompletedEvent
	if err := p.pubsub.ProcessMessage(data, &evt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return p.HandleMatchCompleted(ctx, evt)
}
