package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/billclock/internal/adapters/editor"
	"github.com/renato0307/billclock/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit    SettingsEditCmd    `cmd:"edit" help:"Open settings.json in an editor"`
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and available options" default:"1"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the effective timer configuration"`
}

// SettingsExampleCmd displays settings metadata
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsFilePath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()
	printSettingsTable(example)
	fmt.Println()
	fmt.Println("Create or edit this file to configure billclock.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsShowCmd displays the effective configuration
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	effective := effectiveSettings(cli.Timer)

	if s.Format == "json" {
		data, err := json.MarshalIndent(effective, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printSettingsTable(effective)
	return nil
}

// effectiveSettings renders the timer configuration with settings.json keys
func effectiveSettings(c config.TimerConfig) map[string]any {
	return map[string]any{
		"action_cooldown_ms":          c.ActionCooldown.Milliseconds(),
		"alert_sound":                 c.AlertSound,
		"auto_stop_threshold_seconds": int64(c.AutoStopThreshold.Seconds()),
		"bus_channel":                 c.BusChannel,
		"bus_poll_interval_ms":        c.BusPollInterval.Milliseconds(),
		"recovery_gap_seconds":        int64(c.RecoveryGap.Seconds()),
		"route":                       c.Route,
		"snapshot_key":                c.SnapshotKey,
		"store_backend":               string(c.StoreBackend),
		"tick_interval_ms":            c.TickInterval.Milliseconds(),
		"warning_threshold_seconds":   int64(c.WarningThreshold.Seconds()),
	}
}

func printSettingsTable(values map[string]any) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, values[key])
	}
	w.Flush()
}

// SettingsEditCmd opens settings.json in an editor
type SettingsEditCmd struct {
	Editor string `help:"Editor to use (overrides $BILLCLOCK_EDITOR, $VISUAL, $EDITOR)"`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := config.GetSettingsFilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.SaveSettings(&config.Settings{}); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
		fmt.Printf("Created %s\n", path)
	}

	return editor.NewOpener().Open(path, s.Editor)
}
