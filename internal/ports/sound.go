package ports

import "github.com/renato0307/billclock/internal/domain"

// AlertPlayer plays audible alerts
type AlertPlayer interface {
	// PlayAlert plays the default alert sound
	PlayAlert() error

	// PlayAlertFor plays the sound associated with a duration warning
	PlayAlertFor(warning domain.WarningType) error
}
