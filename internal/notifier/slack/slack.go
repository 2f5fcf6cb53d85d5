package slack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/notifier"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts community announcements to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
	)
	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) ChallengeCreated(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error {
	return s.sendMessage(ctx, formatChallenge(c, challenger, challenged))
}

func (s *Notifier) MatchRated(ctx context.Context, result *rating.Result, winner, loser profile.Player) error {
	return s.sendMessage(ctx, formatMatchRated(result, winner, loser))
}

func (s *Notifier) BadgesAwarded(ctx context.Context, player profile.Player, badges []badge.Badge) error {
	if len(badges) == 0 {
		return nil
	}
	return s.sendMessage(ctx, formatBadges(player, badges))
}

func formatChallenge(c *challenge.Challenge, challenger, challenged profile.Player) slack.Message {
	header := slack.NewTextBlockObject("plain_text", "🏓 New challenge!", true, false)
	details := fmt.Sprintf("*%s* (%d MR) challenged *%s* (%d MR) to a best-of-%d %s match.",
		challenger.Username, challenger.RatingMR, challenged.Username, challenged.RatingMR, c.BestOf, c.MatchType)
	expiry := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Open until %s", c.ExpiresAt.UTC().Format("Mon 02 Jan 15:04 MST")), false, false)

	return slack.NewBlockMessage(
		slack.NewHeaderBlock(header),
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", details, false, false), nil, nil),
		slack.NewContextBlock("", expiry),
	)
}

func formatMatchRated(result *rating.Result, winner, loser profile.Player) slack.Message {
	header := slack.NewTextBlockObject("plain_text", "🏓 Match finished!", true, false)
	lines := []string{
		fmt.Sprintf("🏆 *%s* %d → %d (+%d)", winner.Username, result.WinnerRatingBefore, result.WinnerRatingAfter, result.WinnerRatingAfter-result.WinnerRatingBefore),
		fmt.Sprintf("*%s* %d → %d (%d)", loser.Username, result.LoserRatingBefore, result.LoserRatingAfter, result.LoserRatingAfter-result.LoserRatingBefore),
	}
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(header),
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil),
	)
}

func formatBadges(player profile.Player, badges []badge.Badge) slack.Message {
	header := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🎖️ %s earned new badges!", player.Username), true, false)
	var lines []string
	for _, b := range badges {
		line := fmt.Sprintf("• *%s* (%s)", b.Name, b.Rarity)
		if b.Description != "" {
			line += " - " + b.Description
		}
		lines = append(lines, line)
	}
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(header),
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil),
	)
}
