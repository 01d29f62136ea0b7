package bus

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/adapters/storage"
	"github.com/renato0307/billclock/internal/domain"
)

const testChannel = "billclock:timer-sync"

func setupBusDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), storage.DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close(db) })
	return db
}

func newTestBus(t *testing.T, db *gorm.DB) *SQLiteBus {
	t.Helper()
	b, err := NewSQLiteBus(db, testChannel, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestSQLiteBus_DeliversToPeersNotSender(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)
	a := newTestBus(t, db)
	b := newTestBus(t, db)

	var gotA, gotB collector
	_, err := a.Subscribe(gotA.handle)
	require.NoError(t, err)
	_, err = b.Subscribe(gotB.handle)
	require.NoError(t, err)

	require.NoError(t, a.Publish(ctx, startedMessage()))
	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageStopped}))

	require.NoError(t, a.poll(ctx))
	require.NoError(t, b.poll(ctx))

	assert.Empty(t, gotA.types())
	assert.Equal(t, []domain.MessageType{domain.MessageStarted, domain.MessageStopped}, gotB.types())

	// a second poll sees nothing new
	require.NoError(t, b.poll(ctx))
	assert.Len(t, gotB.types(), 2)
}

func TestSQLiteBus_NoHistoryReplay(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)
	a := newTestBus(t, db)
	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageReset}))

	late := newTestBus(t, db)
	var got collector
	_, err := late.Subscribe(got.handle)
	require.NoError(t, err)

	require.NoError(t, late.poll(ctx))
	assert.Empty(t, got.types())

	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageStateRequest}))
	require.NoError(t, late.poll(ctx))
	assert.Equal(t, []domain.MessageType{domain.MessageStateRequest}, got.types())
}

func TestSQLiteBus_DropsMalformedPayloads(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)
	a := newTestBus(t, db)
	b := newTestBus(t, db)

	var got collector
	_, err := b.Subscribe(got.handle)
	require.NoError(t, err)

	require.NoError(t, db.Create(&storage.BusMessageModel{
		Channel:  testChannel,
		Envelope: []byte{0xff, 0x00, 0x13},
		Origin:   "someone-else",
	}).Error)
	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageStopped}))

	require.NoError(t, b.poll(ctx))
	assert.Equal(t, []domain.MessageType{domain.MessageStopped}, got.types())
}

func TestSQLiteBus_IgnoresOtherChannels(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)
	other, err := NewSQLiteBus(db, "other", time.Hour)
	require.NoError(t, err)
	defer other.Close()
	b := newTestBus(t, db)

	var got collector
	_, err = b.Subscribe(got.handle)
	require.NoError(t, err)

	require.NoError(t, other.Publish(ctx, domain.Message{Type: domain.MessageReset}))
	require.NoError(t, b.poll(ctx))
	assert.Empty(t, got.types())
}

func TestSQLiteBus_Prune(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)
	a := newTestBus(t, db)

	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageReset}))
	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageStopped}))

	n, err := a.prune(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var count int64
	require.NoError(t, db.Model(&storage.BusMessageModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSQLiteBus_PollLoopDelivers(t *testing.T) {
	ctx := context.Background()
	db := setupBusDB(t)
	a := newTestBus(t, db)
	b, err := NewSQLiteBus(db, testChannel, 10*time.Millisecond)
	require.NoError(t, err)
	defer b.Close()

	var got collector
	_, err = b.Subscribe(got.handle)
	require.NoError(t, err)

	require.NoError(t, a.Publish(ctx, domain.Message{Type: domain.MessageReset}))
	assert.Eventually(t, func() bool {
		return len(got.types()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSQLiteBus_Closed(t *testing.T) {
	b := newTestBus(t, setupBusDB(t))
	require.NoError(t, b.Close())

	assert.ErrorIs(t, b.Publish(context.Background(), domain.Message{Type: domain.MessageReset}), ErrBusClosed)
	_, err := b.Subscribe(func(domain.Message) {})
	assert.ErrorIs(t, err, ErrBusClosed)
}
