package pubsub

import (
	"context"
	"sync"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// LocalClient delivers messages in-process to handlers registered with Subscribe.
// It is used when no GCP project is configured.
type LocalClient struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// Handler consumes the raw payload of a message.
type Handler func(ctx context.Context, data []byte) error

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchCompleted EventType = "match-completed"
)

// PushEnvelope is the JSON body of a Pub/Sub push subscription request.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID         string            `json:"messageId"`
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
}
