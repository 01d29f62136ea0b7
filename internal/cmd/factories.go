package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/adapters/boltkv"
	"github.com/renato0307/billclock/internal/adapters/bus"
	"github.com/renato0307/billclock/internal/adapters/clock"
	"github.com/renato0307/billclock/internal/adapters/filekv"
	"github.com/renato0307/billclock/internal/adapters/sound"
	"github.com/renato0307/billclock/internal/adapters/storage"
	"github.com/renato0307/billclock/internal/config"
	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/paths"
	"github.com/renato0307/billclock/internal/ports"
	"github.com/renato0307/billclock/internal/services"
)

// ContainerOptions tweaks how the container is wired
type ContainerOptions struct {
	NoSync bool
}

// Container holds all dependencies for the application
type Container struct {
	Activity    *storage.ActivityLog
	Alerts      *sound.Player
	Analytics   *storage.AnalyticsStore
	Clock       ports.Clock
	Config      config.TimerConfig
	Ledger      *storage.Ledger
	Snapshots   ports.SnapshotStore
	Suggestions ports.MatterSuggester

	// Internal - for cleanup only
	buses  []ports.MessageBus
	db     *gorm.DB
	mu     sync.Mutex
	noSync bool
}

// NewContainer opens the database and the snapshot store selected by cfg
func NewContainer(cfg config.TimerConfig, opts ContainerOptions) (*Container, error) {
	db, err := storage.Open(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	snapshots, err := newSnapshotStore(cfg.StoreBackend, db)
	if err != nil {
		_ = storage.Close(db)
		return nil, err
	}

	sysClock := clock.System{}
	activity := storage.NewActivityLog(db)

	return &Container{
		Activity:    activity,
		Alerts:      sound.NewPlayer(cfg.AlertSound),
		Analytics:   storage.NewAnalyticsStore(db),
		Clock:       sysClock,
		Config:      cfg,
		Ledger:      storage.NewLedger(db, sysClock),
		Snapshots:   snapshots,
		Suggestions: services.NewMatterSuggestionService(activity, services.DefaultActivityWindow),
		db:          db,
		noSync:      opts.NoSync,
	}, nil
}

func newSnapshotStore(backend config.StoreBackend, db *gorm.DB) (ports.SnapshotStore, error) {
	switch backend {
	case config.StoreSQLite, "":
		return storage.NewSnapshotStore(db), nil
	case config.StoreBolt:
		return boltkv.New(paths.GetBoltPath())
	case config.StoreFile:
		return filekv.New(paths.GetSnapshotFilePath())
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// NewBus joins the cross-process message bus. It returns nil when sync
// is disabled; the engine then runs without peers.
func (c *Container) NewBus() (ports.MessageBus, error) {
	if c.noSync {
		return nil, nil
	}
	b, err := bus.NewSQLiteBus(c.db, c.Config.BusChannel, c.Config.BusPollInterval)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.buses = append(c.buses, b)
	c.mu.Unlock()
	return b, nil
}

// EngineConfig maps the timer configuration onto the engine's
func (c *Container) EngineConfig() services.EngineConfig {
	return services.EngineConfig{
		ActionCooldown: c.Config.ActionCooldown,
		RecoveryGap:    c.Config.RecoveryGap,
		Route:          c.Config.Route,
		Thresholds: domain.DurationThresholds{
			AutoStop: c.Config.AutoStopThreshold,
			Warning:  c.Config.WarningThreshold,
		},
		TickInterval: c.Config.TickInterval,
	}
}

// NewEngine builds a timer context on bus. Alerts are only wired for
// contexts a user is watching.
func (c *Container) NewEngine(b ports.MessageBus, withAlerts bool) *services.TimerEngine {
	deps := services.EngineDeps{
		Activity:  c.Activity,
		Analytics: c.Analytics,
		Bus:       b,
		Clock:     c.Clock,
		Entries:   c.Ledger,
		Snapshots: services.NewSnapshotRepository(c.Snapshots, c.Clock, c.Config.SnapshotKey),
	}
	if withAlerts {
		deps.Alerts = c.Alerts
	}
	return services.NewTimerEngine(deps, c.EngineConfig())
}

// NewInteractiveEngine builds an engine for a live view and preselects the
// suggested matter
func (c *Container) NewInteractiveEngine(ctx context.Context, b ports.MessageBus) *services.TimerEngine {
	engine := c.NewEngine(b, true)
	suggestion, err := c.Suggestions.Suggest(ctx, c.Config.Route)
	if err != nil {
		logging.Logger.Warn("Failed to compute matter suggestion", "error", err)
		return engine
	}
	engine.SetSuggestedMatter(ctx, suggestion)
	return engine
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.mu.Lock()
	buses := c.buses
	c.buses = nil
	c.mu.Unlock()

	var errs []error
	for _, b := range buses {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Snapshots != nil {
		if err := c.Snapshots.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.db != nil {
		if err := storage.Close(c.db); err != nil {
			errs = append(errs, err)
		}
		c.db = nil
	}
	return errors.Join(errs...)
}
