package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/billclock/internal/paths"
)

// Settings represents the structure of $BILLCLOCK_HOME/settings.json.
// Every field is optional; nil or empty means "use the default".
type Settings struct {
	ActionCooldownMs         *int   `json:"action_cooldown_ms,omitempty"`
	AlertSound               *bool  `json:"alert_sound,omitempty"`
	AutoStopThresholdSeconds *int   `json:"auto_stop_threshold_seconds,omitempty"`
	BusChannel               string `json:"bus_channel,omitempty"`
	BusPollIntervalMs        *int   `json:"bus_poll_interval_ms,omitempty"`
	Debug                    *bool  `json:"debug,omitempty"`
	MaxLogFiles              *int   `json:"max_log_files,omitempty"`
	RecoveryGapSeconds       *int   `json:"recovery_gap_seconds,omitempty"`
	Route                    string `json:"route,omitempty"`
	SnapshotKey              string `json:"snapshot_key,omitempty"`
	StoreBackend             string `json:"store_backend,omitempty"`
	TickIntervalMs           *int   `json:"tick_interval_ms,omitempty"`
	WarningThresholdSeconds  *int   `json:"warning_threshold_seconds,omitempty"`
}

// GetSettingsPath returns the path of settings.json
func GetSettingsPath() string {
	return paths.GetSettingsPath()
}

// LoadSettings loads settings from $BILLCLOCK_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to $BILLCLOCK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
