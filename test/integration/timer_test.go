package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/billclock/test/integration/harness"
)

func TestStatus_Idle(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertIdle(t, env)

	result := harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "idle")
	harness.AssertStdoutContains(t, result, "00:00:00")
	harness.AssertStdoutNotContains(t, result, "Matter:")
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "billclock "+harness.BuildVersion)
}

func TestStartStop(t *testing.T) {
	backends := []string{"sqlite", "bolt", "file"}

	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.SetEnv("BILLCLOCK_STORE_BACKEND", backend)

			result := harness.RunCommand(t, env, "start", "--matter", "M-100", "--notes", "contract review")
			harness.AssertSuccess(t, result)
			harness.AssertStdoutContains(t, result, "Started timer for matter M-100")
			assert.FileExists(t, env.DBPath())

			status := harness.AssertRunning(t, env, "M-100")
			assert.Equal(t, "contract review", status.Notes)
			assert.NotEmpty(t, status.ActiveEntryID)

			result = harness.RunCommand(t, env, "stop")
			harness.AssertSuccess(t, result)
			harness.AssertStdoutContains(t, result, "Stopped timer for matter M-100")
			harness.AssertStdoutContains(t, result, "billable 6 min")

			harness.AssertIdle(t, env)

			result = harness.RunCommand(t, env, "status")
			harness.AssertSuccess(t, result)
			harness.AssertStdoutNotContains(t, result, "Entry:")
			harness.AssertStdoutNotContains(t, result, "contract review")
		})
	}
}

func TestStart_AlreadyRunning(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "start", "--matter", "M-1"))

	result := harness.RunCommand(t, env, "start", "--matter", "M-2")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "already running for matter M-1")

	harness.AssertRunning(t, env, "M-1")
}

func TestStart_WithoutMatterUsesSuggestion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "start")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "matter")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "start", "--matter", "M-7"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stop"))

	result = harness.RunCommand(t, env, "start")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "M-7")
}

func TestStop_WhenIdle(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stop")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No running timer")
}

func TestReset(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "start", "--matter", "M-1"))

	result := harness.RunCommand(t, env, "reset")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Timer reset")

	harness.AssertIdle(t, env)

	// the entry is left open
	result = harness.RunCommand(t, env, "entries", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "running")
}

func TestNotesAndMatter(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "notes", "nothing to annotate")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "no running timer")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "start", "--matter", "M-1"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "notes", "call with client"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "matter", "M-2"))

	status := harness.AssertRunning(t, env, "M-2")
	assert.Equal(t, "call with client", status.Notes)
}

func TestNoSync(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "--no-sync", "start", "--matter", "M-1"))
	harness.AssertRunning(t, env, "M-1")
	harness.AssertSuccess(t, harness.RunCommand(t, env, "--no-sync", "stop"))
	harness.AssertIdle(t, env)
}
