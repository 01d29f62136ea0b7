package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/renato0307/billclock/internal/domain"
)

// StatsCmd shows timer usage statistics
type StatsCmd struct {
	Since time.Duration `help:"Window to aggregate over" default:"720h"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container
	since := c.Clock.Now().Add(-s.Since)

	counts, err := c.Analytics.CountByName(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	entries, err := c.Ledger.List(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list time entries: %w", err)
	}

	fmt.Printf("Timer usage since %s\n\n", since.Local().Format("2006-01-02 15:04"))
	s.renderEvents(counts)
	fmt.Println()
	s.renderBilling(entries)
	return nil
}

// renderEvents prints event counts sorted by name
func (s *StatsCmd) renderEvents(counts map[domain.AnalyticsEventName]int) {
	if len(counts) == 0 {
		fmt.Println("No events yet.")
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, string(name))
	}
	sort.Strings(names)

	fmt.Println("Event                     Count")
	fmt.Println(strings.Repeat("─", 32))
	for _, name := range names {
		fmt.Printf("%-25s %d\n", name, counts[domain.AnalyticsEventName(name)])
	}
}

// renderBilling prints minutes per matter for finished entries
func (s *StatsCmd) renderBilling(entries []domain.TimeEntry) {
	type totals struct {
		billable int
		minutes  int
	}
	byMatter := make(map[string]*totals)
	var sum totals
	for _, entry := range entries {
		if entry.IsOpen() {
			continue
		}
		t, ok := byMatter[entry.MatterID]
		if !ok {
			t = &totals{}
			byMatter[entry.MatterID] = t
		}
		t.minutes += entry.Minutes
		t.billable += entry.BillableMinutes
		sum.minutes += entry.Minutes
		sum.billable += entry.BillableMinutes
	}

	if len(byMatter) == 0 {
		fmt.Println("No finished time entries.")
		return
	}

	matters := make([]string, 0, len(byMatter))
	for m := range byMatter {
		matters = append(matters, m)
	}
	sort.Strings(matters)

	fmt.Println("Matter              Minutes   Billable")
	fmt.Println(strings.Repeat("─", 38))
	for _, m := range matters {
		fmt.Printf("%-19s %-9d %d\n", m, byMatter[m].minutes, byMatter[m].billable)
	}
	fmt.Println(strings.Repeat("─", 38))
	fmt.Printf("%-19s %-9d %d\n", "Total", sum.minutes, sum.billable)
}
