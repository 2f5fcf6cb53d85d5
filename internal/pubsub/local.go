package pubsub

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var _ PubSubClient = (*LocalClient)(nil)

// NewLocal creates an in-process client.
func NewLocal() *LocalClient {
	return &LocalClient{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers h for messages published on topic.
func (c *LocalClient) Subscribe(topic EventType, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = append(c.handlers[topic], h)
}

// SendMessage encodes data exactly like the remote client and hands it to every
// subscriber of topic before returning. Handler errors are joined.
func (c *LocalClient) SendMessage(ctx context.Context, topic EventType, data any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	c.mu.RLock()
	handlers := c.handlers[topic]
	c.mu.RUnlock()

	if len(handlers) == 0 {
		log.Warn("No local subscribers for topic", "topic", topic)
		return nil
	}

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	log.Debug("Delivered local message", "topic", topic, "subscribers", len(handlers), "failed", len(errs))
	return errors.Join(errs...)
}

func (c *LocalClient) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (c *LocalClient) Close() error {
	return nil
}
