package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/billclock/internal/domain"
)

// StatePump forwards engine states to a running program. Push never
// blocks, so it is safe to call from inside Update; only the latest state
// is delivered when several arrive at once.
type StatePump struct {
	mu     sync.Mutex
	latest domain.TimerState
	signal chan struct{}
}

// NewStatePump creates an empty pump
func NewStatePump() *StatePump {
	return &StatePump{signal: make(chan struct{}, 1)}
}

// Push records a new state. It matches the engine's OnChange signature.
func (p *StatePump) Push(state domain.TimerState) {
	p.mu.Lock()
	p.latest = state
	p.mu.Unlock()

	select {
	case p.signal <- struct{}{}:
	default:
	}
}

// Run delivers states through send until ctx is done
func (p *StatePump) Run(ctx context.Context, send func(tea.Msg)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.signal:
			p.mu.Lock()
			state := p.latest
			p.mu.Unlock()
			send(StateChangedMsg{State: state})
		}
	}
}
