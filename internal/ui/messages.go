package ui

import "github.com/renato0307/billclock/internal/domain"

// StateChangedMsg carries a new engine state into the program
type StateChangedMsg struct {
	State domain.TimerState
}

// actionDoneMsg reports the outcome of a start or stop call
type actionDoneMsg struct {
	err error
}
