package services

import (
	"context"
	"errors"
	"time"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// DefaultSnapshotKey is the store key holding the running session
const DefaultSnapshotKey = "billclock:timer-state"

// SnapshotRepository persists the running session and analyzes recovery.
// Persistence is best-effort: failures are logged and never returned.
type SnapshotRepository struct {
	clock ports.Clock
	key   string
	store ports.SnapshotStore
}

// NewSnapshotRepository creates a repository storing snapshots under key
func NewSnapshotRepository(store ports.SnapshotStore, clock ports.Clock, key string) *SnapshotRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotRepository{
		clock: clock,
		key:   key,
		store: store,
	}
}

// Persist writes the snapshot when the state is running and deletes it otherwise
func (r *SnapshotRepository) Persist(ctx context.Context, state domain.TimerState) {
	if state.IsRunning {
		r.Save(ctx, state)
		return
	}
	r.Clear(ctx)
}

// Save writes a snapshot of a running state
func (r *SnapshotRepository) Save(ctx context.Context, state domain.TimerState) {
	data, err := domain.EncodeSnapshot(domain.NewSnapshot(state, r.clock.Now()))
	if err != nil {
		logging.Logger.Warn("Failed to encode snapshot", "error", err)
		return
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		logging.Logger.Warn("Failed to persist snapshot", "key", r.key, "error", err)
	}
}

// Clear deletes the snapshot
func (r *SnapshotRepository) Clear(ctx context.Context) {
	if err := r.store.Delete(ctx, r.key); err != nil {
		logging.Logger.Warn("Failed to delete snapshot", "key", r.key, "error", err)
	}
}

// Load returns the stored snapshot, or nil when there is none or it is malformed
func (r *SnapshotRepository) Load(ctx context.Context) *domain.Snapshot {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			logging.Logger.Warn("Failed to read snapshot", "key", r.key, "error", err)
		}
		return nil
	}

	snap, err := domain.DecodeSnapshot(data)
	if err != nil {
		logging.Logger.Debug("Ignoring malformed snapshot", "key", r.key, "bytes", len(data))
		return nil
	}
	return snap
}

// Recover rebuilds the running session from the stored snapshot, with
// elapsed time recomputed from its start instant. It returns the initial
// state and no recovery info when nothing is running.
func (r *SnapshotRepository) Recover(ctx context.Context, gapThreshold time.Duration) (domain.TimerState, *domain.RecoveryInfo) {
	snap := r.Load(ctx)
	if snap == nil {
		return domain.InitialState(), nil
	}

	now := r.clock.Now()
	state := snap.ToState(now)
	if !state.IsRunning {
		return domain.InitialState(), nil
	}

	info := domain.AnalyzeRecovery(snap, now, gapThreshold)
	logging.Logger.Info("Recovered running session",
		"entry_id", state.ActiveEntryID,
		"matter_id", state.SelectedMatterID,
		"elapsed_seconds", state.ElapsedSeconds,
		"gap_seconds", info.TimeGapSeconds)
	return state, info
}
