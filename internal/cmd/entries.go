package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/billclock/internal/domain"
)

// EntriesCmd groups the time entry commands
type EntriesCmd struct {
	List EntriesListCmd `cmd:"list" help:"List recorded time entries" default:"1"`
}

// EntriesListCmd lists time entries
type EntriesListCmd struct {
	Format string        `help:"Output format: table or json" enum:"table,json" default:"table"`
	Since  time.Duration `help:"Only show entries started within this window" default:"168h"`
}

// entryOutput is the JSON form of a time entry
type entryOutput struct {
	BillableMinutes int    `json:"billable_minutes"`
	FinishedAt      string `json:"finished_at,omitempty"`
	ID              string `json:"id"`
	MatterID        string `json:"matter_id"`
	Minutes         int    `json:"minutes"`
	Notes           string `json:"notes,omitempty"`
	StartedAt       string `json:"started_at"`
}

// Run executes the entries list command
func (e *EntriesListCmd) Run(cli *CLI) error {
	c := cli.Container
	since := c.Clock.Now().Add(-e.Since)

	entries, err := c.Ledger.List(context.Background(), since)
	if err != nil {
		return fmt.Errorf("failed to list time entries: %w", err)
	}

	if e.Format == "json" {
		out := make([]entryOutput, 0, len(entries))
		for _, entry := range entries {
			out = append(out, toEntryOutput(entry))
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No time entries.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATTER\tSTARTED\tMINUTES\tBILLABLE\tNOTES")
	for _, entry := range entries {
		minutes := fmt.Sprintf("%d", entry.Minutes)
		billable := fmt.Sprintf("%d", entry.BillableMinutes)
		if entry.IsOpen() {
			minutes, billable = "running", "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(entry.ID),
			entry.MatterID,
			entry.StartedAt.Local().Format("2006-01-02 15:04"),
			minutes,
			billable,
			entry.Notes)
	}
	return w.Flush()
}

func toEntryOutput(entry domain.TimeEntry) entryOutput {
	out := entryOutput{
		BillableMinutes: entry.BillableMinutes,
		ID:              entry.ID,
		MatterID:        entry.MatterID,
		Minutes:         entry.Minutes,
		Notes:           entry.Notes,
		StartedAt:       entry.StartedAt.UTC().Format(time.RFC3339),
	}
	if entry.FinishedAt != nil {
		out.FinishedAt = entry.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
