package processor

import (
	"errors"

	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/pubsub"
)

// ErrInvalidMessage is returned for payloads that cannot be decoded.
var ErrInvalidMessage = errors.New("invalid message")

// Processor handles everything that happens after a match is played.
type Processor struct {
	ratings  RatingStore
	badges   BadgeAwarder
	players  PlayerStore
	notifier Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}
