//go:build darwin

package sound

import (
	"os/exec"

	"github.com/renato0307/billclock/internal/domain"
)

// playForWarning plays sounds on macOS using afplay
func playForWarning(warning domain.WarningType) error {
	var soundFiles []string

	switch warning {
	case domain.WarningAutoStopped:
		soundFiles = []string{
			"/System/Library/Sounds/Sosumi.aiff",
			"/System/Library/Sounds/Basso.aiff",
		}
	case domain.WarningEightHour:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Ping.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}
	return errNoPlayer
}
