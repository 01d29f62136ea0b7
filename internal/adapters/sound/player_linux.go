//go:build linux

package sound

import (
	"os/exec"

	"github.com/renato0307/billclock/internal/domain"
)

type soundCommand struct {
	cmd  string
	args []string
}

// playForWarning plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForWarning(warning domain.WarningType) error {
	var sounds []soundCommand

	switch warning {
	case domain.WarningAutoStopped:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/alarm-clock-elapsed.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/alarm-clock-elapsed.wav"}},
		}
	case domain.WarningEightHour:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/dialog-warning.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/dialog-warning.wav"}},
		}
	default:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errNoPlayer
}
