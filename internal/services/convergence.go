package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
)

// Mount recovers a running session from the snapshot store, joins the
// message bus and, when idle, asks peers whether a session is running
// elsewhere. The handshake answer arrives asynchronously.
func (e *TimerEngine) Mount(ctx context.Context) error {
	var (
		recovered domain.TimerState
		info      *domain.RecoveryInfo
	)
	if e.snapshots != nil {
		recovered, info = e.snapshots.Recover(ctx, e.config.RecoveryGap)
	}

	e.mu.Lock()
	if e.mounted {
		e.mu.Unlock()
		return nil
	}
	e.mounted = true
	e.recovery = info
	next := e.state
	if recovered.IsRunning {
		recovered.SuggestedMatterID = e.state.SuggestedMatterID
		next = e.applyLocked(ctx, domain.HydrateEvent{State: recovered})
	}
	if next.IsRunning {
		e.startTickerLocked()
	}
	e.mu.Unlock()
	e.notify(next)

	if info != nil && info.HasSignificantGap {
		e.track(ctx, domain.EventModalOpened, map[string]any{
			"gap_seconds": info.TimeGapSeconds,
			"modal":       "recovery",
		})
	}

	if e.bus == nil {
		return nil
	}

	unsubscribe, err := e.bus.Subscribe(e.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to message bus: %w", err)
	}
	e.mu.Lock()
	e.unsubscribe = unsubscribe
	e.mu.Unlock()

	if !next.IsRunning {
		e.publish(ctx, domain.Message{Type: domain.MessageStateRequest})
	}
	return nil
}

// Unmount leaves the message bus and stops the ticker. The snapshot is left
// in place so the session survives this context.
func (e *TimerEngine) Unmount() {
	e.mu.Lock()
	unsubscribe := e.unsubscribe
	e.unsubscribe = nil
	e.mounted = false
	e.stopTickerLocked()
	e.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// handleMessage reacts to a peer's message. It always reads the latest
// local state, never a value captured at subscription time.
func (e *TimerEngine) handleMessage(msg domain.Message) {
	ctx := context.Background()

	switch msg.Type {
	case domain.MessageStarted:
		if msg.Started == nil {
			return
		}
		e.syncFromPeer(ctx, msg.Started.StartInstant(),
			stringValue(msg.Started.SelectedMatterID),
			stringValue(msg.Started.ActiveEntryID), "")

	case domain.MessageStateResponse:
		snap := msg.Snapshot
		if snap == nil || !snap.IsRunning {
			return
		}
		e.syncFromPeer(ctx, snap.StartInstant(),
			stringValue(snap.SelectedMatterID),
			stringValue(snap.ActiveEntryID), snap.Notes)

	case domain.MessageStopped:
		logging.Logger.Debug("Peer stopped the session")
		e.dispatch(ctx, domain.StopEvent{})

	case domain.MessageReset:
		logging.Logger.Debug("Peer reset the session")
		e.dispatch(ctx, domain.ResetEvent{})

	case domain.MessageStateRequest:
		state := e.State()
		if !state.IsRunning {
			return
		}
		e.publish(ctx, domain.NewStateResponse(domain.NewSnapshot(state, e.clock.Now())))
	}
}

// syncFromPeer converges an idle context onto a session running elsewhere
func (e *TimerEngine) syncFromPeer(ctx context.Context, start time.Time, matterID, entryID, notes string) {
	if start.IsZero() {
		return
	}

	e.mu.Lock()
	if e.state.IsRunning {
		e.mu.Unlock()
		logging.Logger.Debug("Ignoring peer session, already running", "peer_entry_id", entryID)
		return
	}
	next := e.applyLocked(ctx, domain.SyncFromTabEvent{
		ActiveEntryID:    entryID,
		Now:              e.clock.Now(),
		SelectedMatterID: matterID,
		StartTime:        start,
	})
	if notes != "" {
		next = e.applyLocked(ctx, domain.UpdateNotesEvent{Notes: notes})
	}
	e.mu.Unlock()
	e.notify(next)

	logging.Logger.Info("Synced with session from peer", "entry_id", entryID, "matter_id", matterID)
}

// publish broadcasts a message. Failures are logged and dropped.
func (e *TimerEngine) publish(ctx context.Context, msg domain.Message) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(ctx, msg); err != nil {
		logging.Logger.Warn("Failed to publish message", "type", msg.Type, "error", err)
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
