package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/billclock/internal/domain"
)

func TestBridge_RelaysBothWays(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)

	hub := NewHub()
	bridgeEnd := hub.Endpoint(testChannel)
	sessionA := hub.Endpoint(testChannel)
	sessionB := hub.Endpoint(testChannel)

	relay := newTestBus(t, db)
	otherProcess := newTestBus(t, db)

	stop, err := Bridge(bridgeEnd, relay)
	require.NoError(t, err)
	defer stop()

	var gotA, gotB, gotOther collector
	_, err = sessionA.Subscribe(gotA.handle)
	require.NoError(t, err)
	_, err = sessionB.Subscribe(gotB.handle)
	require.NoError(t, err)
	_, err = otherProcess.Subscribe(gotOther.handle)
	require.NoError(t, err)

	// in-process session to the other process
	require.NoError(t, sessionA.Publish(ctx, domain.Message{Type: domain.MessageStateRequest}))
	assert.Empty(t, gotA.types())
	assert.Equal(t, []domain.MessageType{domain.MessageStateRequest}, gotB.types())
	require.NoError(t, otherProcess.poll(ctx))
	assert.Equal(t, []domain.MessageType{domain.MessageStateRequest}, gotOther.types())

	// other process to every in-process session
	require.NoError(t, otherProcess.Publish(ctx, domain.Message{Type: domain.MessageStopped}))
	require.NoError(t, relay.poll(ctx))
	assert.Equal(t, []domain.MessageType{domain.MessageStopped}, gotA.types())
	assert.Equal(t, []domain.MessageType{domain.MessageStateRequest, domain.MessageStopped}, gotB.types())

	// nothing bounces back to the sender
	require.NoError(t, otherProcess.poll(ctx))
	require.NoError(t, relay.poll(ctx))
	assert.Len(t, gotOther.types(), 1)
	assert.Len(t, gotA.types(), 1)
}
