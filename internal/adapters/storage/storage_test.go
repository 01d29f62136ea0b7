package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/adapters/clock"
	"github.com/renato0307/billclock/internal/domain"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// setupTestDB opens a fresh database in a temporary directory
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DBFileName)

	db, err := Open(path)
	require.NoError(t, err)
	defer Close(db)

	assert.FileExists(t, path)
	assert.True(t, db.Migrator().HasTable(&KVEntryModel{}))
	assert.True(t, db.Migrator().HasTable(&TimeEntryModel{}))
	assert.True(t, db.Migrator().HasTable(&AnalyticsEventModel{}))
	assert.True(t, db.Migrator().HasTable(&MatterActivityModel{}))
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(setupTestDB(t))

	_, err := store.Get(ctx, "billclock:timer-state")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	require.NoError(t, store.Set(ctx, "billclock:timer-state", []byte(`{"isRunning":true}`)))
	got, err := store.Get(ctx, "billclock:timer-state")
	require.NoError(t, err)
	assert.Equal(t, `{"isRunning":true}`, string(got))

	require.NoError(t, store.Set(ctx, "billclock:timer-state", []byte(`{"isRunning":false}`)))
	got, err = store.Get(ctx, "billclock:timer-state")
	require.NoError(t, err)
	assert.Equal(t, `{"isRunning":false}`, string(got))

	require.NoError(t, store.Delete(ctx, "billclock:timer-state"))
	_, err = store.Get(ctx, "billclock:timer-state")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotStore_DeleteMissingKey(t *testing.T) {
	store := NewSnapshotStore(setupTestDB(t))
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestSnapshotStore_SharedAcrossConnections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DBFileName)

	first, err := OpenSnapshotStore(path)
	require.NoError(t, err)
	defer first.Close()
	second, err := OpenSnapshotStore(path)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Set(ctx, "k", []byte("v1")))
	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

func TestLedger_CreateAndFinish(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(t0)
	ledger := NewLedger(setupTestDB(t), clk)

	id, err := ledger.Create(ctx, "M1", "drafting")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	clk.Advance(7*time.Minute + 10*time.Second)
	res, err := ledger.Finish(ctx, id, "")
	require.NoError(t, err)
	assert.Equal(t, 8, res.ActualMinutes)
	assert.Equal(t, 12, res.BillableMinutes)

	entries, err := ledger.List(ctx, t0.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "M1", e.MatterID)
	assert.Equal(t, "drafting", e.Notes)
	assert.Equal(t, 8, e.Minutes)
	assert.Equal(t, 12, e.BillableMinutes)
	assert.False(t, e.IsOpen())
	assert.True(t, e.StartedAt.Equal(t0))
}

func TestLedger_FinishReplacesNotes(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(t0)
	ledger := NewLedger(setupTestDB(t), clk)

	id, err := ledger.Create(ctx, "M1", "first")
	require.NoError(t, err)
	clk.Advance(time.Minute)
	_, err = ledger.Finish(ctx, id, "final notes")
	require.NoError(t, err)

	entries, err := ledger.List(ctx, t0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "final notes", entries[0].Notes)
}

func TestLedger_CreateRequiresMatter(t *testing.T) {
	ledger := NewLedger(setupTestDB(t), clock.NewManual(t0))

	_, err := ledger.Create(context.Background(), "", "notes")
	assert.ErrorIs(t, err, domain.ErrMatterRequired)
}

func TestLedger_FinishErrors(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(t0)
	ledger := NewLedger(setupTestDB(t), clk)

	_, err := ledger.Finish(ctx, "does-not-exist", "")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	id, err := ledger.Create(ctx, "M1", "")
	require.NoError(t, err)
	clk.Advance(30 * time.Second)
	_, err = ledger.Finish(ctx, id, "")
	require.NoError(t, err)

	_, err = ledger.Finish(ctx, id, "")
	assert.ErrorIs(t, err, domain.ErrEntryFinished)
}

func TestLedger_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(t0)
	ledger := NewLedger(setupTestDB(t), clk)

	_, err := ledger.Create(ctx, "OLD", "")
	require.NoError(t, err)
	clk.Advance(2 * time.Hour)
	_, err = ledger.Create(ctx, "M1", "")
	require.NoError(t, err)
	clk.Advance(time.Hour)
	_, err = ledger.Create(ctx, "M2", "")
	require.NoError(t, err)

	entries, err := ledger.List(ctx, t0.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "M2", entries[0].MatterID)
	assert.Equal(t, "M1", entries[1].MatterID)
	assert.True(t, entries[0].IsOpen())
}

func TestAnalyticsStore_CountByName(t *testing.T) {
	ctx := context.Background()
	store := NewAnalyticsStore(setupTestDB(t))

	events := []domain.AnalyticsEvent{
		{Name: domain.EventStart, OccurredAt: t0.Add(-48 * time.Hour)},
		{Name: domain.EventStart, OccurredAt: t0, Properties: map[string]any{"matter_id": "M1"}},
		{Name: domain.EventStart, OccurredAt: t0.Add(time.Minute)},
		{Name: domain.EventStop, OccurredAt: t0.Add(time.Hour), Route: "/matters/M1"},
	}
	for _, e := range events {
		require.NoError(t, store.Track(ctx, e))
	}

	counts, err := store.CountByName(ctx, t0.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[domain.AnalyticsEventName]int{
		domain.EventStart: 2,
		domain.EventStop:  1,
	}, counts)
}

func TestAnalyticsStore_StoresPropertiesAsJSON(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewAnalyticsStore(db)

	require.NoError(t, store.Track(ctx, domain.AnalyticsEvent{
		Name:       domain.EventAutoStop,
		OccurredAt: t0,
		Properties: map[string]any{"elapsed_seconds": 86400},
	}))

	var m AnalyticsEventModel
	require.NoError(t, db.First(&m).Error)
	assert.JSONEq(t, `{"elapsed_seconds":86400}`, m.Properties)
	assert.Equal(t, string(domain.EventAutoStop), m.Name)
}

func TestActivityLog_RecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	log := NewActivityLog(setupTestDB(t))

	for i, matter := range []string{"M1", "M2", "M3"} {
		require.NoError(t, log.Record(ctx, domain.MatterActivity{
			MatterID:   matter,
			OccurredAt: t0.Add(time.Duration(i) * time.Minute),
			Route:      "/matters",
		}))
	}

	recent, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "M3", recent[0].MatterID)
	assert.Equal(t, "M2", recent[1].MatterID)
	assert.Equal(t, "/matters", recent[0].Route)

	all, err := log.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWithRetryStopsOnOtherErrors(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return gorm.ErrInvalidData
	}, 3)

	assert.ErrorIs(t, err, gorm.ErrInvalidData)
	assert.Equal(t, 1, calls)
}
