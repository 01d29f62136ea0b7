package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/services"
)

// runOneShot mounts a timer context, runs fn against it and unmounts.
// The snapshot and the bus carry the result to every other context.
func runOneShot(ctx context.Context, c *Container, fn func(engine *services.TimerEngine) error) error {
	b, err := c.NewBus()
	if err != nil {
		return fmt.Errorf("failed to join message bus: %w", err)
	}

	engine := c.NewEngine(b, false)
	if err := engine.Mount(ctx); err != nil {
		return fmt.Errorf("failed to mount timer: %w", err)
	}
	defer engine.Unmount()

	logging.Logger.Debug("One-shot context mounted", "status", engine.State().Status)
	return fn(engine)
}
