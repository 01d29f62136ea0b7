package bus

import (
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/billclock/internal/domain"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	sent := time.Date(2025, 3, 10, 9, 0, 0, 123456789, time.UTC)
	data, err := EncodeEnvelope(domain.Envelope{
		Channel: "billclock:timer-sync",
		Message: startedMessage(),
		Origin:  "ctx-1",
		SentAt:  sent,
	})
	require.NoError(t, err)

	env, err := DecodeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, "billclock:timer-sync", env.Channel)
	assert.Equal(t, "ctx-1", env.Origin)
	assert.True(t, env.SentAt.Equal(sent))
	assert.Equal(t, domain.MessageStarted, env.Message.Type)
	require.NotNil(t, env.Message.Started)
	assert.Equal(t, "M1", *env.Message.Started.SelectedMatterID)
}

func TestEnvelope_DecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeEnvelope([]byte("not cbor at all"))
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
}

func TestEnvelope_DecodeRejectsBadMessage(t *testing.T) {
	data, err := cbor.Marshal(wireEnvelope{
		Channel: "c",
		Message: []byte(`{"type":"LAUNCH","payload":null}`),
		Origin:  "o",
	})
	require.NoError(t, err)

	_, err = DecodeEnvelope(data)
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
}
