package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/billclock/internal/logging"
)

// ErrNoEditor is returned when no editor could be found
var ErrNoEditor = errors.New("no suitable editor found. Set --editor, $BILLCLOCK_EDITOR, $VISUAL, or $EDITOR")

// Opener runs an editor attached to the current terminal
type Opener struct {
	run func(cmd *exec.Cmd) error
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{run: func(cmd *exec.Cmd) error { return cmd.Run() }}
}

// Open edits path and waits for the editor to exit.
// Priority: cliEditor → $BILLCLOCK_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := findEditor(path, cliEditor)
	if editor == "" {
		return ErrNoEditor
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := o.run(cmd); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

func findEditor(path string, cliEditor string) (string, []string) {
	if cliEditor != "" {
		return cliEditor, []string{path}
	}
	for _, env := range []string{"BILLCLOCK_EDITOR", "VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, []string{path}
		}
	}
	return findPlatformEditor(path)
}
