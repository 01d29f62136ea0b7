//go:build !darwin && !linux && !windows

package sound

import "github.com/renato0307/billclock/internal/domain"

// playForWarning leaves unsupported platforms to the terminal bell
func playForWarning(warning domain.WarningType) error {
	return errNoPlayer
}
