//go:build windows

package sound

import (
	"os/exec"

	"github.com/renato0307/billclock/internal/domain"
)

// playForWarning plays sounds on Windows using PowerShell
func playForWarning(warning domain.WarningType) error {
	var soundCommands []string

	switch warning {
	case domain.WarningAutoStopped:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Hand.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case domain.WarningEightHour:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errNoPlayer
}
