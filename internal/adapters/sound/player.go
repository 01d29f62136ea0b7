package sound

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// errNoPlayer is returned by platform players when no sound command worked
var errNoPlayer = errors.New("no sound player available")

// Player implements ports.AlertPlayer
type Player struct {
	bell    io.Writer
	enabled bool
	play    func(warning domain.WarningType) error
}

var _ ports.AlertPlayer = (*Player)(nil)

// NewPlayer creates a player using the platform sound commands. A disabled
// player stays silent.
func NewPlayer(enabled bool) *Player {
	return &Player{
		bell:    os.Stderr,
		enabled: enabled,
		play:    playForWarning,
	}
}

// PlayAlert plays the default alert sound
func (p *Player) PlayAlert() error {
	return p.PlayAlertFor("")
}

// PlayAlertFor plays the sound associated with a duration warning.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlayAlertFor(warning domain.WarningType) error {
	if !p.enabled {
		return nil
	}
	if err := p.play(warning); err != nil {
		logging.Logger.Debug("Falling back to terminal bell", "warning", warning, "error", err)
		return p.terminalBell()
	}
	return nil
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
