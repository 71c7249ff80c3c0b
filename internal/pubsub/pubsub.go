// Package pubsub is the in-process event bus. Handlers publish domain events
// and background consumers react to them without blocking the request.
package pubsub

import (
	"context"
)

// Message is what travels on the bus.
type Message struct {
	Topic string
	// UserID is the user whose action produced the message, if any.
	UserID   string
	Payload  []byte
	Metadata map[string]string
}

// Handler processes one received message.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type Subscriber interface {
	// Subscribe registers handler for topic and returns once the
	// subscription is active. Messages are handled until ctx is done or the
	// subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
