package paths

import (
	"os"
	"path/filepath"
)

// GetBillclockHome returns BILLCLOCK_HOME or ~/.billclock default
func GetBillclockHome() string {
	home := os.Getenv("BILLCLOCK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".billclock"
		}
		return filepath.Join(homeDir, ".billclock")
	}
	return ExpandPath(home)
}

// GetDBPath returns $BILLCLOCK_HOME/billclock.db
func GetDBPath() string {
	return filepath.Join(GetBillclockHome(), "billclock.db")
}

// GetBoltPath returns $BILLCLOCK_HOME/snapshots.bolt
func GetBoltPath() string {
	return filepath.Join(GetBillclockHome(), "snapshots.bolt")
}

// GetSnapshotFilePath returns $BILLCLOCK_HOME/snapshots.json
func GetSnapshotFilePath() string {
	return filepath.Join(GetBillclockHome(), "snapshots.json")
}

// GetSettingsPath returns $BILLCLOCK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetBillclockHome(), "settings.json")
}

// GetHostKeyPath returns $BILLCLOCK_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetBillclockHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
