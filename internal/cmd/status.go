package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/services"
	"github.com/renato0307/billclock/internal/ui"
)

// StatusCmd shows the timer state
type StatusCmd struct {
	JSON  bool `help:"Output as JSON" name:"json" xor:"format"`
	Short bool `help:"One-line output for status bars such as tmux status-right" xor:"format"`
}

// statusOutput is the JSON form of the status command
type statusOutput struct {
	ActiveEntryID      string `json:"active_entry_id,omitempty"`
	ElapsedSeconds     int64  `json:"elapsed_seconds"`
	Error              string `json:"error,omitempty"`
	IsRunning          bool   `json:"is_running"`
	Notes              string `json:"notes,omitempty"`
	RecoveryGapSeconds int64  `json:"recovery_gap_seconds,omitempty"`
	SelectedMatterID   string `json:"selected_matter_id,omitempty"`
	StartTime          string `json:"start_time,omitempty"`
	Status             string `json:"status"`
	SuggestedMatterID  string `json:"suggested_matter_id,omitempty"`
	Warning            string `json:"warning,omitempty"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	ctx := context.Background()
	return runOneShot(ctx, cli.Container, func(engine *services.TimerEngine) error {
		engine.Resume(ctx)

		out := newStatusOutput(engine.State(), engine.Recovery(), engine.Warning())
		if s.JSON {
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if s.Short {
			fmt.Println(shortStatus(out))
			return nil
		}

		printStatus(out)
		return nil
	})
}

func newStatusOutput(state domain.TimerState, recovery *domain.RecoveryInfo, warning *domain.WarningInfo) statusOutput {
	out := statusOutput{
		ActiveEntryID:     state.ActiveEntryID,
		ElapsedSeconds:    state.ElapsedSeconds,
		Error:             state.Error,
		IsRunning:         state.IsRunning,
		Notes:             state.Notes,
		SelectedMatterID:  state.SelectedMatterID,
		Status:            string(state.Status),
		SuggestedMatterID: state.SuggestedMatterID,
	}
	if !state.StartTime.IsZero() {
		out.StartTime = state.StartTime.UTC().Format(time.RFC3339)
	}
	if recovery != nil && recovery.HasSignificantGap {
		out.RecoveryGapSeconds = recovery.TimeGapSeconds
	}
	if warning != nil {
		out.Warning = string(warning.Type)
	}
	return out
}

func printStatus(out statusOutput) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Status:\t%s %s\n", domain.TimerStatus(out.Status).Symbol(), out.Status)
	fmt.Fprintf(w, "Elapsed:\t%s\n", ui.FormatElapsed(out.ElapsedSeconds))
	if out.SelectedMatterID != "" {
		fmt.Fprintf(w, "Matter:\t%s\n", out.SelectedMatterID)
	}
	if out.ActiveEntryID != "" {
		fmt.Fprintf(w, "Entry:\t%s\n", out.ActiveEntryID)
	}
	if out.StartTime != "" {
		fmt.Fprintf(w, "Started:\t%s\n", out.StartTime)
	}
	if out.Notes != "" {
		fmt.Fprintf(w, "Notes:\t%s\n", out.Notes)
	}
	if !out.IsRunning && out.SuggestedMatterID != "" {
		fmt.Fprintf(w, "Suggested:\t%s\n", out.SuggestedMatterID)
	}
	if out.RecoveryGapSeconds > 0 {
		fmt.Fprintf(w, "Recovered:\tafter a gap of %s\n", time.Duration(out.RecoveryGapSeconds)*time.Second)
	}
	if out.Warning != "" {
		fmt.Fprintf(w, "Warning:\t%s\n", out.Warning)
	}
	if out.Error != "" {
		fmt.Fprintf(w, "Error:\t%s\n", out.Error)
	}
}

// shortStatus renders e.g. "● M-1 01:02:03", or the idle symbol alone
func shortStatus(out statusOutput) string {
	symbol := domain.TimerStatus(out.Status).Symbol()
	if !out.IsRunning {
		return symbol
	}
	line := fmt.Sprintf("%s %s %s", symbol, out.SelectedMatterID, ui.FormatElapsed(out.ElapsedSeconds))
	if out.Warning != "" {
		line += " !"
	}
	return line
}
