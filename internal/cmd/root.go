package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/billclock/internal/config"
	"github.com/renato0307/billclock/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	NoSync      bool             `help:"Do not exchange messages with other billclock processes"`
	Store       string           `help:"Snapshot store backend: sqlite, bolt or file (overrides $BILLCLOCK_STORE_BACKEND)"`

	Watch    WatchCmd    `cmd:"" help:"Show the live timer (default)" default:"1"`
	Start    StartCmd    `cmd:"" help:"Start the timer for a matter"`
	Stop     StopCmd     `cmd:"" help:"Stop the timer and finish the time entry"`
	Reset    ResetCmd    `cmd:"" help:"Discard the running session without finishing its entry"`
	Notes    NotesCmd    `cmd:"" help:"Replace the notes of the running session"`
	Matter   MatterCmd   `cmd:"" help:"Change the matter of the running session"`
	Status   StatusCmd   `cmd:"" help:"Show the timer state"`
	Suggest  SuggestCmd  `cmd:"" help:"Suggest the matter to track from recent activity"`
	Entries  EntriesCmd  `cmd:"" help:"Inspect recorded time entries"`
	Stats    StatsCmd    `cmd:"" help:"Show timer usage statistics"`
	Serve    ServeCmd    `cmd:"" help:"Serve the timer over SSH"`
	Settings SettingsCmd `cmd:"" help:"Inspect or edit settings"`

	// Internal fields (not flags)
	Container *Container         `kong:"-"`
	Timer     config.TimerConfig `kong:"-"`
	settings  *config.Settings   `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging and resolves the timer configuration.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("BILLCLOCK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("BILLCLOCK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit debug settings and append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("BILLCLOCK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("BILLCLOCK_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("BILLCLOCK_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	timer, err := config.ResolveTimerConfig(c.settings)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Store != "" {
		timer.StoreBackend = config.StoreBackend(c.Store)
	}
	if err := timer.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Timer = timer

	// Created after logging so the gorm logger writes to the right place
	container, err := NewContainer(timer, ContainerOptions{NoSync: c.NoSync})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("Configuration resolved",
		"store_backend", timer.StoreBackend,
		"bus_channel", timer.BusChannel,
		"no_sync", c.NoSync)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
