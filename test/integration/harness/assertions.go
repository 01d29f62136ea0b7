package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Status mirrors the JSON printed by `billclock status --json`.
type Status struct {
	ActiveEntryID     string `json:"active_entry_id"`
	ElapsedSeconds    int64  `json:"elapsed_seconds"`
	Error             string `json:"error"`
	IsRunning         bool   `json:"is_running"`
	Notes             string `json:"notes"`
	SelectedMatterID  string `json:"selected_matter_id"`
	StartTime         string `json:"start_time"`
	Status            string `json:"status"`
	SuggestedMatterID string `json:"suggested_matter_id"`
	Warning           string `json:"warning"`
}

// AssertSuccess verifies the command exited with code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode,
		"billclock %v exited with %d.\nStdout: %s\nStderr: %s",
		result.Args, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited with a non-zero code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode,
		"billclock %v succeeded, expected a failure.\nStdout: %s",
		result.Args, result.Stdout)
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"billclock %v stdout is missing %q.\nStdout: %s", result.Args, expected, result.Stdout)
}

// AssertStdoutNotContains verifies stdout does not contain the string.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected,
		"billclock %v stdout has %q.\nStdout: %s", result.Args, unexpected, result.Stdout)
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"billclock %v stderr is missing %q.\nStderr: %s", result.Args, expected, result.Stderr)
}

// AssertValidJSON unmarshals stdout into target, failing the test on bad JSON.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "billclock %v printed invalid JSON.\nStdout: %s", result.Args, result.Stdout)
}

// ReadStatus runs `status --json` in env and decodes the result.
func ReadStatus(tb testing.TB, env *TestEnvironment) Status {
	tb.Helper()
	result := RunCommand(tb, env, "status", "--json")
	AssertSuccess(tb, result)

	var status Status
	AssertValidJSON(tb, result, &status)
	return status
}

// AssertRunning verifies a session is running for matterID.
func AssertRunning(tb testing.TB, env *TestEnvironment, matterID string) Status {
	tb.Helper()
	status := ReadStatus(tb, env)
	require.True(tb, status.IsRunning, "expected a running timer, got status %q", status.Status)
	assert.Equal(tb, "running", status.Status)
	assert.Equal(tb, matterID, status.SelectedMatterID)
	assert.NotEmpty(tb, status.StartTime)
	return status
}

// AssertIdle verifies no session is running and no start instant is left behind.
func AssertIdle(tb testing.TB, env *TestEnvironment) Status {
	tb.Helper()
	status := ReadStatus(tb, env)
	assert.False(tb, status.IsRunning)
	assert.Equal(tb, "idle", status.Status)
	assert.Empty(tb, status.StartTime)
	assert.Empty(tb, status.ActiveEntryID)
	return status
}
