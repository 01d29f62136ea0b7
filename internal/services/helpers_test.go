package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/billclock/internal/adapters/clock"
	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
	portsmocks "github.com/renato0307/billclock/internal/ports/mocks"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// memoryStore is a SnapshotStore backed by a map
type memoryStore struct {
	data map[string][]byte
	mu   sync.Mutex
}

var _ ports.SnapshotStore = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return v, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memoryStore) Close() error { return nil }

func (s *memoryStore) snapshot(t *testing.T) *domain.Snapshot {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[DefaultSnapshotKey]
	if !ok {
		return nil
	}
	snap, err := domain.DecodeSnapshot(data)
	require.NoError(t, err)
	return snap
}

// recordingSink collects analytics events
type recordingSink struct {
	events []domain.AnalyticsEvent
	mu     sync.Mutex
}

func (r *recordingSink) Track(ctx context.Context, event domain.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSink) named(name domain.AnalyticsEventName) []domain.AnalyticsEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AnalyticsEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type testEngine struct {
	alerts    *portsmocks.MockAlertPlayer
	analytics *recordingSink
	clock     *clock.Manual
	engine    *TimerEngine
	entries   *portsmocks.MockTimeEntryService
	store     *memoryStore
}

func testConfig() EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.Route = "/matters"
	cfg.TickInterval = time.Hour
	return cfg
}

func newTestEngine(t *testing.T, bus ports.MessageBus, opts ...func(*EngineConfig)) *testEngine {
	t.Helper()
	cfg := testConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	te := &testEngine{
		alerts:    portsmocks.NewMockAlertPlayer(t),
		analytics: &recordingSink{},
		clock:     clock.NewManual(t0),
		entries:   portsmocks.NewMockTimeEntryService(t),
		store:     newMemoryStore(),
	}
	te.engine = NewTimerEngine(EngineDeps{
		Alerts:    te.alerts,
		Analytics: te.analytics,
		Bus:       bus,
		Clock:     te.clock,
		Entries:   te.entries,
		Snapshots: NewSnapshotRepository(te.store, te.clock, DefaultSnapshotKey),
	}, cfg)
	t.Cleanup(te.engine.Unmount)
	return te
}

// startSession runs a successful start at the current clock reading
func (te *testEngine) startSession(t *testing.T, matterID, entryID, notes string) {
	t.Helper()
	te.entries.EXPECT().Create(mock.Anything, matterID, notes).Return(entryID, nil).Once()
	require.NoError(t, te.engine.Start(context.Background(), matterID, notes))
	require.True(t, te.engine.State().IsRunning)
}
