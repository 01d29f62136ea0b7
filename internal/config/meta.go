package config

import (
	"reflect"
	"strings"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue returns the default of each setting as its example
func generateExampleValue(t reflect.Type, fieldName string) any {
	d := DefaultTimerConfig()

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			switch fieldName {
			case "alert_sound":
				return d.AlertSound
			}
			return false
		case reflect.Int:
			switch fieldName {
			case "action_cooldown_ms":
				return int(d.ActionCooldown.Milliseconds())
			case "auto_stop_threshold_seconds":
				return int(d.AutoStopThreshold.Seconds())
			case "bus_poll_interval_ms":
				return int(d.BusPollInterval.Milliseconds())
			case "max_log_files":
				return 1000
			case "recovery_gap_seconds":
				return int(d.RecoveryGap.Seconds())
			case "tick_interval_ms":
				return int(d.TickInterval.Milliseconds())
			case "warning_threshold_seconds":
				return int(d.WarningThreshold.Seconds())
			}
			return 0
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "bus_channel":
			return d.BusChannel
		case "route":
			return d.Route
		case "snapshot_key":
			return d.SnapshotKey
		case "store_backend":
			return string(d.StoreBackend)
		}
	}
	return ""
}
