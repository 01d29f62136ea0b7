package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ui"
)

// WatchCmd shows the live timer
type WatchCmd struct{}

// Run executes the TUI
func (w *WatchCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cli.Container
	b, err := c.NewBus()
	if err != nil {
		return fmt.Errorf("failed to join message bus: %w", err)
	}

	engine := c.NewInteractiveEngine(ctx, b)
	if err := engine.Mount(ctx); err != nil {
		return fmt.Errorf("failed to mount timer: %w", err)
	}
	defer engine.Unmount()

	subtitle, err := os.Hostname()
	if err != nil {
		subtitle = "local"
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(
		ui.NewModel(ctx, engine, subtitle),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	pump := ui.NewStatePump()
	removeListener := engine.OnChange(pump.Push)
	defer removeListener()

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, cancelLoops := context.WithCancel(gctx)

	g.Go(func() error {
		defer cancelLoops()
		logging.Logger.Info("Starting TUI program")
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			logging.Logger.Error("TUI program error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		logging.Logger.Info("TUI program exited normally")
		return nil
	})
	g.Go(func() error {
		return pump.Run(loopCtx, p.Send)
	})
	g.Go(func() error {
		return notifyOnResume(loopCtx, func() { p.Send(tea.ResumeMsg{}) })
	})

	return g.Wait()
}
