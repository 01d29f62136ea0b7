package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/billclock/internal/domain"
)

type collector struct {
	mu   sync.Mutex
	msgs []domain.Message
}

func (c *collector) handle(msg domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *collector) types() []domain.MessageType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.MessageType, 0, len(c.msgs))
	for _, m := range c.msgs {
		out = append(out, m.Type)
	}
	return out
}

func startedMessage() domain.Message {
	return domain.NewStartedMessage(domain.TimerState{
		ActiveEntryID:    "E1",
		IsRunning:        true,
		SelectedMatterID: "M1",
		StartTime:        time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:           domain.StatusRunning,
	})
}

func TestHub_DeliversToOthersOnly(t *testing.T) {
	ctx := context.Background()
	hub := NewHub()
	a := hub.Endpoint("timer")
	b := hub.Endpoint("timer")
	c := hub.Endpoint("other")

	var gotA, gotB, gotC collector
	_, err := a.Subscribe(gotA.handle)
	require.NoError(t, err)
	_, err = b.Subscribe(gotB.handle)
	require.NoError(t, err)
	_, err = c.Subscribe(gotC.handle)
	require.NoError(t, err)

	require.NoError(t, a.Publish(ctx, startedMessage()))

	assert.Empty(t, gotA.types(), "sender must not receive its own message")
	assert.Equal(t, []domain.MessageType{domain.MessageStarted}, gotB.types())
	assert.Empty(t, gotC.types(), "other channels are isolated")

	gotB.mu.Lock()
	started := gotB.msgs[0].Started
	gotB.mu.Unlock()
	require.NotNil(t, started)
	assert.Equal(t, "E1", *started.ActiveEntryID)
}

func TestHub_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	hub := NewHub()
	a := hub.Endpoint("timer")
	b := hub.Endpoint("timer")

	var got collector
	unsubscribe, err := b.Subscribe(got.handle)
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()
	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageStopped}))
	assert.Empty(t, got.types())
}

func TestHub_ClosedEndpoint(t *testing.T) {
	ctx := context.Background()
	hub := NewHub()
	a := hub.Endpoint("timer")
	b := hub.Endpoint("timer")

	var got collector
	_, err := b.Subscribe(got.handle)
	require.NoError(t, err)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageReset}))
	assert.Empty(t, got.types())

	assert.ErrorIs(t, b.Publish(ctx, domain.Message{Type: domain.MessageReset}), ErrBusClosed)
	_, err = b.Subscribe(got.handle)
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestHub_RejectsInvalidMessage(t *testing.T) {
	hub := NewHub()
	a := hub.Endpoint("timer")

	err := a.Publish(context.Background(), domain.Message{Type: domain.MessageStarted})
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
}
