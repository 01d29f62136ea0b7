package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/services"
	"github.com/renato0307/billclock/internal/ui"
)

// errNotRunning is returned by commands that need a running session
var errNotRunning = errors.New("no running timer")

// StartCmd starts the timer
type StartCmd struct {
	Matter string `help:"Matter to bill (defaults to the suggested matter)" short:"m"`
	Notes  string `help:"Notes for the time entry" short:"n"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container

	return runOneShot(ctx, c, func(engine *services.TimerEngine) error {
		if s.Matter == "" {
			suggestion, err := c.Suggestions.Suggest(ctx, c.Config.Route)
			if err != nil {
				logging.Logger.Warn("Failed to compute matter suggestion", "error", err)
			}
			engine.SetSuggestedMatter(ctx, suggestion)
		}

		if err := engine.Start(ctx, s.Matter, s.Notes); err != nil {
			if errors.Is(err, domain.ErrTimerRunning) {
				state := engine.State()
				return fmt.Errorf("timer already running for matter %s", state.SelectedMatterID)
			}
			return err
		}

		state := engine.State()
		if !state.IsRunning {
			return fmt.Errorf("timer did not start")
		}
		fmt.Printf("Started timer for matter %s\n", state.SelectedMatterID)
		fmt.Printf("Entry: %s\n", state.ActiveEntryID)
		return nil
	})
}

// StopCmd stops the timer
type StopCmd struct {
	Notes string `help:"Final notes for the time entry (keeps the session notes when empty)" short:"n"`
}

// Run executes the stop command
func (s *StopCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container

	return runOneShot(ctx, c, func(engine *services.TimerEngine) error {
		engine.Tick(ctx)
		before := engine.State()
		if !before.IsRunning {
			fmt.Println("No running timer")
			return nil
		}

		if err := engine.Stop(ctx, s.Notes); err != nil {
			return err
		}
		if engine.State().IsRunning {
			return fmt.Errorf("timer is still running")
		}

		fmt.Printf("Stopped timer for matter %s after %s\n",
			before.SelectedMatterID, ui.FormatElapsed(before.ElapsedSeconds))
		if entry := findEntry(ctx, c, before.ActiveEntryID, before.StartTime); entry != nil {
			fmt.Printf("Recorded %d min, billable %d min\n", entry.Minutes, entry.BillableMinutes)
		}
		return nil
	})
}

// findEntry looks up a time entry started at or after since
func findEntry(ctx context.Context, c *Container, entryID string, since time.Time) *domain.TimeEntry {
	if entryID == "" {
		return nil
	}
	entries, err := c.Ledger.List(ctx, since.Add(-time.Second))
	if err != nil {
		logging.Logger.Warn("Failed to list time entries", "error", err)
		return nil
	}
	for i := range entries {
		if entries[i].ID == entryID {
			return &entries[i]
		}
	}
	return nil
}

// ResetCmd resets the timer
type ResetCmd struct{}

// Run executes the reset command
func (r *ResetCmd) Run(cli *CLI) error {
	ctx := context.Background()
	return runOneShot(ctx, cli.Container, func(engine *services.TimerEngine) error {
		engine.Reset(ctx)
		fmt.Println("Timer reset")
		return nil
	})
}

// NotesCmd replaces the notes of the running session
type NotesCmd struct {
	Text string `arg:"" help:"New notes"`
}

// Run executes the notes command
func (n *NotesCmd) Run(cli *CLI) error {
	ctx := context.Background()
	return runOneShot(ctx, cli.Container, func(engine *services.TimerEngine) error {
		if !engine.State().IsRunning {
			return errNotRunning
		}
		engine.UpdateNotes(ctx, n.Text)
		fmt.Println("Notes updated")
		return nil
	})
}

// MatterCmd changes the matter of the running session
type MatterCmd struct {
	ID string `arg:"" help:"Matter ID"`
}

// Run executes the matter command
func (m *MatterCmd) Run(cli *CLI) error {
	ctx := context.Background()
	return runOneShot(ctx, cli.Container, func(engine *services.TimerEngine) error {
		if !engine.State().IsRunning {
			return errNotRunning
		}
		engine.UpdateMatter(ctx, m.ID)
		fmt.Printf("Matter set to %s\n", m.ID)
		return nil
	})
}
