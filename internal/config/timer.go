package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// StoreBackend selects the snapshot store implementation
type StoreBackend string

const (
	StoreBolt   StoreBackend = "bolt"
	StoreFile   StoreBackend = "file"
	StoreSQLite StoreBackend = "sqlite"
)

// Defaults for the timer configuration surface
const (
	DefaultActionCooldown    = 500 * time.Millisecond
	DefaultAutoStopThreshold = 24 * time.Hour
	DefaultBusChannel        = "billclock:timer-sync"
	DefaultBusPollInterval   = 250 * time.Millisecond
	DefaultRecoveryGap       = 5 * time.Minute
	DefaultRoute             = "/matters"
	DefaultSnapshotKey       = "billclock:timer-state"
	DefaultStoreBackend      = StoreSQLite
	DefaultTickInterval      = time.Second
	DefaultWarningThreshold  = 8 * time.Hour
)

// TimerConfig is the effective timer configuration of a context
type TimerConfig struct {
	ActionCooldown    time.Duration
	AlertSound        bool
	AutoStopThreshold time.Duration
	BusChannel        string
	BusPollInterval   time.Duration
	RecoveryGap       time.Duration
	Route             string
	SnapshotKey       string
	StoreBackend      StoreBackend
	TickInterval      time.Duration
	WarningThreshold  time.Duration
}

// DefaultTimerConfig returns the built-in defaults
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		ActionCooldown:    DefaultActionCooldown,
		AlertSound:        true,
		AutoStopThreshold: DefaultAutoStopThreshold,
		BusChannel:        DefaultBusChannel,
		BusPollInterval:   DefaultBusPollInterval,
		RecoveryGap:       DefaultRecoveryGap,
		Route:             DefaultRoute,
		SnapshotKey:       DefaultSnapshotKey,
		StoreBackend:      DefaultStoreBackend,
		TickInterval:      DefaultTickInterval,
		WarningThreshold:  DefaultWarningThreshold,
	}
}

// ApplySettings overlays values present in settings.json
func (c *TimerConfig) ApplySettings(s *Settings) {
	if s == nil {
		return
	}
	if s.ActionCooldownMs != nil {
		c.ActionCooldown = time.Duration(*s.ActionCooldownMs) * time.Millisecond
	}
	if s.AlertSound != nil {
		c.AlertSound = *s.AlertSound
	}
	if s.AutoStopThresholdSeconds != nil {
		c.AutoStopThreshold = time.Duration(*s.AutoStopThresholdSeconds) * time.Second
	}
	if s.BusChannel != "" {
		c.BusChannel = s.BusChannel
	}
	if s.BusPollIntervalMs != nil {
		c.BusPollInterval = time.Duration(*s.BusPollIntervalMs) * time.Millisecond
	}
	if s.RecoveryGapSeconds != nil {
		c.RecoveryGap = time.Duration(*s.RecoveryGapSeconds) * time.Second
	}
	if s.Route != "" {
		c.Route = s.Route
	}
	if s.SnapshotKey != "" {
		c.SnapshotKey = s.SnapshotKey
	}
	if s.StoreBackend != "" {
		c.StoreBackend = StoreBackend(s.StoreBackend)
	}
	if s.TickIntervalMs != nil {
		c.TickInterval = time.Duration(*s.TickIntervalMs) * time.Millisecond
	}
	if s.WarningThresholdSeconds != nil {
		c.WarningThreshold = time.Duration(*s.WarningThresholdSeconds) * time.Second
	}
}

// ApplyEnv overlays BILLCLOCK_* environment variables. Unparseable values
// are reported instead of silently ignored.
func (c *TimerConfig) ApplyEnv() error {
	ints := []struct {
		env  string
		unit time.Duration
		dst  *time.Duration
	}{
		{"BILLCLOCK_ACTION_COOLDOWN_MS", time.Millisecond, &c.ActionCooldown},
		{"BILLCLOCK_AUTO_STOP_THRESHOLD_SECONDS", time.Second, &c.AutoStopThreshold},
		{"BILLCLOCK_BUS_POLL_INTERVAL_MS", time.Millisecond, &c.BusPollInterval},
		{"BILLCLOCK_RECOVERY_GAP_SECONDS", time.Second, &c.RecoveryGap},
		{"BILLCLOCK_TICK_INTERVAL_MS", time.Millisecond, &c.TickInterval},
		{"BILLCLOCK_WARNING_THRESHOLD_SECONDS", time.Second, &c.WarningThreshold},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.env)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", v.env, raw, err)
		}
		*v.dst = time.Duration(n) * v.unit
	}

	if raw, ok := os.LookupEnv("BILLCLOCK_ALERT_SOUND"); ok && raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid BILLCLOCK_ALERT_SOUND %q: %w", raw, err)
		}
		c.AlertSound = b
	}
	if v := os.Getenv("BILLCLOCK_BUS_CHANNEL"); v != "" {
		c.BusChannel = v
	}
	if v := os.Getenv("BILLCLOCK_ROUTE"); v != "" {
		c.Route = v
	}
	if v := os.Getenv("BILLCLOCK_SNAPSHOT_KEY"); v != "" {
		c.SnapshotKey = v
	}
	if v := os.Getenv("BILLCLOCK_STORE_BACKEND"); v != "" {
		c.StoreBackend = StoreBackend(v)
	}
	return nil
}

// Validate checks the configuration for values the engine cannot work with
func (c TimerConfig) Validate() error {
	switch c.StoreBackend {
	case StoreSQLite, StoreBolt, StoreFile:
	default:
		return fmt.Errorf("unknown store backend %q (want sqlite, bolt or file)", c.StoreBackend)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.BusPollInterval <= 0 {
		return fmt.Errorf("bus poll interval must be positive, got %s", c.BusPollInterval)
	}
	if c.ActionCooldown < 0 {
		return fmt.Errorf("action cooldown cannot be negative, got %s", c.ActionCooldown)
	}
	if c.WarningThreshold > 0 && c.AutoStopThreshold > 0 && c.WarningThreshold >= c.AutoStopThreshold {
		return fmt.Errorf("warning threshold (%s) must be below the auto-stop threshold (%s)",
			c.WarningThreshold, c.AutoStopThreshold)
	}
	if c.SnapshotKey == "" {
		return fmt.Errorf("snapshot key cannot be empty")
	}
	if c.BusChannel == "" {
		return fmt.Errorf("bus channel cannot be empty")
	}
	return nil
}

// ResolveTimerConfig applies settings.json then the environment over the defaults
func ResolveTimerConfig(s *Settings) (TimerConfig, error) {
	cfg := DefaultTimerConfig()
	cfg.ApplySettings(s)
	if err := cfg.ApplyEnv(); err != nil {
		return TimerConfig{}, err
	}
	return cfg, nil
}
