package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const (
	commandTimeout = 30 * time.Second
	versionPackage = "github.com/renato0307/billclock/internal/version"

	// BuildVersion is stamped into the test binary
	BuildVersion = "integration"
)

var (
	binaryPath string
	buildErr   error
	buildOnce  sync.Once
)

// CommandResult holds the outcome of one billclock invocation
type CommandResult struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd once per test run with the version stamped as
// BuildVersion. Call it from TestMain.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}

		dir, err := os.MkdirTemp("", "billclock-integration-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(dir, "billclock")

		ldflags := fmt.Sprintf("-X %s.Version=%s", versionPackage, BuildVersion)
		cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", binaryPath, "./cmd")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			buildErr = fmt.Errorf("failed to build billclock: %w", err)
		}
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary. Call it from TestMain.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to remove %s: %v", filepath.Dir(binaryPath), err)
	}
}

// RunCommand runs billclock with args inside env. A command that cannot be
// started or times out reports exit code -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{Args: args}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("billclock %v timed out after %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("billclock %v could not run: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
