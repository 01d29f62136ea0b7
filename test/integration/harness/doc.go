// Package harness provides utilities for integration testing the billclock CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - BILLCLOCK_HOME: Isolated per test (temp directory)
//   - BILLCLOCK_DEBUG: Disabled to reduce noise
//   - BILLCLOCK_ALERT_SOUND: Disabled so tests stay silent
package harness
