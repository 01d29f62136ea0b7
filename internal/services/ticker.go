package services

import (
	"sync"
	"time"
)

// ElapsedTicker calls onTick on a fixed period until stopped
type ElapsedTicker struct {
	interval time.Duration
	onTick   func()
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewElapsedTicker creates a ticker. It does nothing until Start is called.
func NewElapsedTicker(interval time.Duration, onTick func()) *ElapsedTicker {
	if interval <= 0 {
		interval = time.Second
	}
	return &ElapsedTicker{
		interval: interval,
		onTick:   onTick,
		stopCh:   make(chan struct{}),
	}
}

// Start begins ticking in the background
func (t *ElapsedTicker) Start() {
	go t.loop()
}

// Stop halts the ticker. It is safe to call more than once and from
// within onTick.
func (t *ElapsedTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stopCh) })
}

func (t *ElapsedTicker) loop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			t.onTick()
		}
	}
}
