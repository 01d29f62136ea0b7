package ports

import (
	"context"

	"github.com/renato0307/billclock/internal/domain"
)

// MessageHandler receives messages published by other contexts
type MessageHandler func(msg domain.Message)

// MessageBus is a best-effort, unordered broadcast channel between contexts.
// A bus never delivers a context's own messages back to it.
type MessageBus interface {
	// Publish broadcasts a message to every other subscribed context
	Publish(ctx context.Context, msg domain.Message) error

	// Subscribe registers a handler and returns a function that removes it
	Subscribe(handler MessageHandler) (func(), error)

	Close() error
}
