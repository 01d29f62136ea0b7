package bus

import (
	"context"
	"fmt"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// Bridge relays messages between a hub endpoint and another bus so that
// in-process contexts and other processes see each other. Neither side
// echoes a context's own messages, so nothing loops. The returned function
// stops the relay.
func Bridge(local *MemoryBus, remote ports.MessageBus) (func(), error) {
	ctx := context.Background()

	stopLocal, err := local.Subscribe(func(msg domain.Message) {
		if err := remote.Publish(ctx, msg); err != nil {
			logging.Logger.Warn("Failed to relay message out", "type", msg.Type, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to hub: %w", err)
	}

	stopRemote, err := remote.Subscribe(func(msg domain.Message) {
		if err := local.Publish(ctx, msg); err != nil {
			logging.Logger.Warn("Failed to relay message in", "type", msg.Type, "error", err)
		}
	})
	if err != nil {
		stopLocal()
		return nil, fmt.Errorf("failed to subscribe to remote bus: %w", err)
	}

	return func() {
		stopLocal()
		stopRemote()
	}, nil
}
