package notifier

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

// LogNotifier writes announcements to the application log. It is used when no
// chat integration is configured.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) ChallengeCreated(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error {
	log.Info("Challenge created", "challenge_id", c.ID, "challenger", challenger.Username, "challenged", challenged.Username, "expires_at", c.ExpiresAt)
	return nil
}

func (LogNotifier) MatchRated(ctx context.Context, result *rating.Result, winner, loser profile.Player) error {
	log.Info("Match rated", "match_id", result.MatchID, "winner", winner.Username, "loser", loser.Username, "change", result.RatingChange)
	return nil
}

func (LogNotifier) BadgesAwarded(ctx context.Context, player profile.Player, badges []badge.Badge) error {
	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.Name)
	}
	log.Info("Badges awarded", "player", player.Username, "badges", names)
	return nil
}
