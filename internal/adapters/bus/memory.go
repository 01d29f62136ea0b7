package bus

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// ErrBusClosed is returned when publishing on a closed endpoint
var ErrBusClosed = errors.New("message bus closed")

// Hub connects contexts living in the same process, such as the SSH
// sessions of one server. Messages go through the JSON wire codec so
// receivers never share memory with the sender.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]hubSubscriber
}

type hubSubscriber struct {
	handler ports.MessageHandler
	origin  string
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]hubSubscriber)}
}

// Endpoint returns a bus for one context on channel
func (h *Hub) Endpoint(channel string) *MemoryBus {
	return &MemoryBus{
		channel: channel,
		hub:     h,
		origin:  uuid.New().String(),
	}
}

func (h *Hub) subscribe(channel, origin string, handler ports.MessageHandler) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[uint64]hubSubscriber)
	}
	h.subs[channel][h.nextID] = hubSubscriber{handler: handler, origin: origin}
	return h.nextID
}

func (h *Hub) unsubscribe(channel string, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[channel], id)
}

// deliver hands an encoded message to every subscriber on channel except
// the sender. Handlers run outside the hub lock.
func (h *Hub) deliver(env domain.Envelope, data []byte) {
	h.mu.RLock()
	targets := make([]ports.MessageHandler, 0, len(h.subs[env.Channel]))
	for _, s := range h.subs[env.Channel] {
		if s.origin == env.Origin {
			continue
		}
		targets = append(targets, s.handler)
	}
	h.mu.RUnlock()

	for _, handler := range targets {
		msg, err := domain.DecodeMessage(data)
		if err != nil {
			logging.Logger.Debug("Dropping malformed message", "channel", env.Channel, "error", err)
			return
		}
		handler(msg)
	}
}

// MemoryBus is one context's endpoint on a Hub
type MemoryBus struct {
	channel string
	closed  bool
	hub     *Hub
	mu      sync.Mutex
	origin  string
	subIDs  []uint64
}

var _ ports.MessageBus = (*MemoryBus)(nil)

// Origin returns the identifier of this endpoint
func (b *MemoryBus) Origin() string {
	return b.origin
}

// Publish implements ports.MessageBus. Delivery is synchronous.
func (b *MemoryBus) Publish(ctx context.Context, msg domain.Message) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBusClosed
	}

	data, err := domain.EncodeMessage(msg)
	if err != nil {
		return err
	}
	b.hub.deliver(domain.Envelope{
		Channel: b.channel,
		Message: msg,
		Origin:  b.origin,
	}, data)
	return nil
}

// Subscribe implements ports.MessageBus
func (b *MemoryBus) Subscribe(handler ports.MessageHandler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.hub.subscribe(b.channel, b.origin, handler)
	b.subIDs = append(b.subIDs, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.hub.unsubscribe(b.channel, id) })
	}, nil
}

// Close removes all subscriptions of this endpoint
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, id := range b.subIDs {
		b.hub.unsubscribe(b.channel, id)
	}
	b.subIDs = nil
	return nil
}
