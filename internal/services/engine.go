package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// EngineConfig tunes a TimerEngine
type EngineConfig struct {
	ActionCooldown time.Duration
	RecoveryGap    time.Duration
	Route          string
	Thresholds     domain.DurationThresholds
	TickInterval   time.Duration
}

// DefaultEngineConfig returns the production defaults
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ActionCooldown: 500 * time.Millisecond,
		RecoveryGap:    domain.DefaultRecoveryGap,
		Thresholds:     domain.DefaultDurationThresholds(),
		TickInterval:   time.Second,
	}
}

// EngineDeps are the collaborators of a TimerEngine.
// Activity, Alerts, Analytics and Bus may be nil.
type EngineDeps struct {
	Activity  ports.ActivityWriter
	Alerts    ports.AlertPlayer
	Analytics ports.AnalyticsSink
	Bus       ports.MessageBus
	Clock     ports.Clock
	Entries   ports.TimeEntryService
	Snapshots *SnapshotRepository
}

// TimerEngine owns the timer state of one context. Every mutation goes
// through domain.Transition; persistence, broadcast and analytics are
// effects performed around it.
type TimerEngine struct {
	activity  ports.ActivityWriter
	alerts    ports.AlertPlayer
	analytics ports.AnalyticsSink
	bus       ports.MessageBus
	clock     ports.Clock
	config    EngineConfig
	entries   ports.TimeEntryService
	limiter   *ActionRateLimiter
	snapshots *SnapshotRepository

	mu          sync.Mutex
	epoch       uint64
	guard       *DurationGuard
	listenerID  int
	listeners   map[int]func(domain.TimerState)
	mounted     bool
	recovery    *domain.RecoveryInfo
	state       domain.TimerState
	ticker      *ElapsedTicker
	unsubscribe func()
	warning     *domain.WarningInfo
}

// NewTimerEngine creates an engine in the initial state. Call Mount to
// recover a running session and join the message bus.
func NewTimerEngine(deps EngineDeps, cfg EngineConfig) *TimerEngine {
	return &TimerEngine{
		activity:  deps.Activity,
		alerts:    deps.Alerts,
		analytics: deps.Analytics,
		bus:       deps.Bus,
		clock:     deps.Clock,
		config:    cfg,
		entries:   deps.Entries,
		guard:     NewDurationGuard(cfg.Thresholds),
		limiter:   NewActionRateLimiter(cfg.ActionCooldown),
		listeners: make(map[int]func(domain.TimerState)),
		snapshots: deps.Snapshots,
		state:     domain.InitialState(),
	}
}

// State returns the current state
func (e *TimerEngine) State() domain.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Recovery returns the pending recovery notice, if any
func (e *TimerEngine) Recovery() *domain.RecoveryInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.recovery == nil {
		return nil
	}
	info := *e.recovery
	return &info
}

// Warning returns the pending duration warning, if any
func (e *TimerEngine) Warning() *domain.WarningInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.warning == nil {
		return nil
	}
	w := *e.warning
	return &w
}

// OnChange registers a listener called after every state change.
// Listeners run outside the engine lock. The returned function removes it.
func (e *TimerEngine) OnChange(listener func(domain.TimerState)) func() {
	e.mu.Lock()
	e.listenerID++
	id := e.listenerID
	e.listeners[id] = listener
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners, id)
		e.mu.Unlock()
	}
}

// Start opens a time entry for matterID and starts the session.
// Calls inside the cooldown window are ignored and return nil. An empty
// matterID falls back to the selected matter.
func (e *TimerEngine) Start(ctx context.Context, matterID, notes string) error {
	if !e.limiter.Allow(e.clock.Now()) {
		logging.Logger.Debug("Start ignored inside cooldown window", "matter_id", matterID)
		return nil
	}

	e.mu.Lock()
	if e.state.IsRunning {
		e.mu.Unlock()
		return domain.ErrTimerRunning
	}
	if matterID == "" {
		matterID = e.state.SelectedMatterID
	}
	suggested := e.state.SuggestedMatterID
	e.applyLocked(ctx, domain.ClearErrorEvent{})
	next := e.applyLocked(ctx, domain.SetStatusEvent{Status: domain.StatusStopping})
	epoch := e.epoch
	e.mu.Unlock()
	e.notify(next)

	logging.Logger.Info("Creating time entry", "matter_id", matterID)
	entryID, err := e.entries.Create(ctx, matterID, notes)
	if err == nil && entryID == "" {
		err = domain.ErrMissingEntryHandle
	}

	e.mu.Lock()
	if e.epoch != epoch {
		e.mu.Unlock()
		logging.Logger.Warn("Discarding stale start response", "entry_id", entryID, "error", err)
		if err == nil {
			e.finishOrphan(ctx, entryID)
		}
		return nil
	}
	if err != nil {
		next = e.applyLocked(ctx, domain.SetErrorEvent{Message: err.Error()})
		e.mu.Unlock()
		e.notify(next)
		logging.Logger.Error("Failed to start timer", "matter_id", matterID, "error", err)
		return fmt.Errorf("failed to start timer: %w", err)
	}
	next = e.applyLocked(ctx, domain.StartEvent{
		EntryID:   entryID,
		MatterID:  matterID,
		Notes:     notes,
		StartTime: e.clock.Now(),
	})
	e.mu.Unlock()
	e.notify(next)

	logging.Logger.Info("Timer started", "entry_id", entryID, "matter_id", matterID)
	e.trackStart(ctx, next, suggested)
	e.recordActivity(ctx, matterID)
	e.publish(ctx, domain.NewStartedMessage(next))
	return nil
}

// Stop finishes the active time entry and ends the session. When the
// service call fails the session keeps running with the error set.
// Calls inside the cooldown window are ignored and return nil.
func (e *TimerEngine) Stop(ctx context.Context, notes string) error {
	return e.stop(ctx, notes, false)
}

func (e *TimerEngine) stop(ctx context.Context, notes string, auto bool) error {
	if !auto && !e.limiter.Allow(e.clock.Now()) {
		logging.Logger.Debug("Stop ignored inside cooldown window")
		return nil
	}

	e.mu.Lock()
	entryID := e.state.ActiveEntryID
	if entryID == "" {
		wasRunning := e.state.IsRunning
		next := e.applyLocked(ctx, domain.StopEvent{})
		e.mu.Unlock()
		e.notify(next)
		logging.Logger.Debug("Stopped session without entry handle", "was_running", wasRunning)
		if wasRunning {
			e.publish(ctx, domain.Message{Type: domain.MessageStopped})
		}
		return nil
	}
	if notes == "" {
		notes = e.state.Notes
	}
	startTime := e.state.StartTime
	e.applyLocked(ctx, domain.ClearErrorEvent{})
	next := e.applyLocked(ctx, domain.SetStatusEvent{Status: domain.StatusStopping})
	e.mu.Unlock()
	e.notify(next)

	logging.Logger.Info("Finishing time entry", "entry_id", entryID, "auto", auto)
	result, err := e.entries.Finish(ctx, entryID, notes)
	if errors.Is(err, domain.ErrEntryFinished) {
		logging.Logger.Info("Time entry was already finished elsewhere", "entry_id", entryID)
		err = nil
	}

	now := e.clock.Now()
	e.mu.Lock()
	if e.state.ActiveEntryID != entryID {
		e.mu.Unlock()
		logging.Logger.Warn("Discarding stale stop response", "entry_id", entryID, "error", err)
		return nil
	}
	if err != nil {
		next = e.applyLocked(ctx, domain.SetErrorEvent{Message: err.Error()})
		e.mu.Unlock()
		e.notify(next)
		logging.Logger.Error("Failed to stop timer, session kept running", "entry_id", entryID, "error", err)
		return fmt.Errorf("failed to stop timer: %w", err)
	}
	next = e.applyLocked(ctx, domain.StopEvent{})
	e.mu.Unlock()
	e.notify(next)

	logging.Logger.Info("Timer stopped",
		"entry_id", entryID,
		"actual_minutes", result.ActualMinutes,
		"billable_minutes", result.BillableMinutes)
	e.track(ctx, domain.EventStop, map[string]any{
		"actual_minutes":   result.ActualMinutes,
		"auto":             auto,
		"billable_minutes": result.BillableMinutes,
		"elapsed_seconds":  domain.ElapsedSeconds(startTime, now),
		"entry_id":         entryID,
	})
	e.publish(ctx, domain.Message{Type: domain.MessageStopped})
	return nil
}

// Reset returns to the initial state, clears the snapshot and tells peers.
// The open time entry, if any, is left untouched.
func (e *TimerEngine) Reset(ctx context.Context) {
	e.dispatch(ctx, domain.ResetEvent{})
	e.publish(ctx, domain.Message{Type: domain.MessageReset})
}

// UpdateNotes replaces the session notes
func (e *TimerEngine) UpdateNotes(ctx context.Context, notes string) {
	e.dispatch(ctx, domain.UpdateNotesEvent{Notes: notes})
}

// UpdateMatter replaces the selected matter
func (e *TimerEngine) UpdateMatter(ctx context.Context, matterID string) {
	e.dispatch(ctx, domain.UpdateMatterEvent{MatterID: matterID})
}

// SetSuggestedMatter records a suggestion. It only fills the selection when
// the user has not chosen a matter.
func (e *TimerEngine) SetSuggestedMatter(ctx context.Context, suggestion *domain.MatterSuggestion) {
	if suggestion == nil || suggestion.MatterID == "" {
		return
	}
	e.dispatch(ctx, domain.SetSuggestedMatterEvent{MatterID: suggestion.MatterID})
	e.track(ctx, domain.EventSuggestionShown, map[string]any{
		"matter_id": suggestion.MatterID,
		"reason":    suggestion.Reason,
	})
}

// ClearError dismisses the current error
func (e *TimerEngine) ClearError(ctx context.Context) {
	e.dispatch(ctx, domain.ClearErrorEvent{})
}

// AcknowledgeRecovery dismisses the recovery notice
func (e *TimerEngine) AcknowledgeRecovery(ctx context.Context) {
	e.mu.Lock()
	info := e.recovery
	e.recovery = nil
	e.mu.Unlock()
	if info == nil {
		return
	}
	e.track(ctx, domain.EventModalClosed, map[string]any{
		"gap_seconds": info.TimeGapSeconds,
		"modal":       "recovery",
	})
}

// AcknowledgeWarning dismisses the duration warning
func (e *TimerEngine) AcknowledgeWarning(ctx context.Context) {
	e.mu.Lock()
	w := e.warning
	e.warning = nil
	e.mu.Unlock()
	if w == nil {
		return
	}
	e.track(ctx, domain.EventModalClosed, map[string]any{
		"elapsed_seconds": w.ElapsedSeconds,
		"modal":           "warning",
		"warning":         string(w.Type),
	})
}

// Tick recomputes elapsed time from the start instant and runs the
// duration guard. It does nothing while idle.
func (e *TimerEngine) Tick(ctx context.Context) {
	now := e.clock.Now()

	e.mu.Lock()
	if !e.state.IsRunning {
		e.mu.Unlock()
		return
	}
	elapsed := domain.ElapsedSeconds(e.state.StartTime, now)
	next := e.applyLocked(ctx, domain.UpdateElapsedEvent{Seconds: elapsed})
	decision := e.guard.Check(elapsed)
	var warning *domain.WarningInfo
	if !decision.None() {
		warning = &domain.WarningInfo{
			ElapsedSeconds: elapsed,
			TriggeredAt:    now,
			Type:           decision.Warning,
		}
		e.warning = warning
	}
	e.mu.Unlock()
	e.notify(next)

	if warning == nil {
		return
	}

	logging.Logger.Warn("Duration threshold reached", "warning", warning.Type, "elapsed_seconds", elapsed)
	e.track(ctx, domain.EventWarningShown, map[string]any{
		"elapsed_seconds": elapsed,
		"warning":         string(warning.Type),
	})
	e.track(ctx, domain.EventModalOpened, map[string]any{"modal": "warning"})
	e.playAlert(warning.Type)

	if decision.AutoStop {
		e.track(ctx, domain.EventAutoStop, map[string]any{"elapsed_seconds": elapsed})
		if err := e.stop(ctx, "", true); err != nil {
			logging.Logger.Error("Auto-stop failed", "error", err)
		}
	}
}

// Resume forces an immediate recomputation, e.g. after the process was
// suspended
func (e *TimerEngine) Resume(ctx context.Context) {
	e.Tick(ctx)
}

// dispatch applies an event with its effects and notifies listeners
func (e *TimerEngine) dispatch(ctx context.Context, ev domain.Event) domain.TimerState {
	e.mu.Lock()
	next := e.applyLocked(ctx, ev)
	e.mu.Unlock()
	e.notify(next)
	return next
}

// applyLocked runs the transition and the effects tied to it.
// Must be called with e.mu held.
func (e *TimerEngine) applyLocked(ctx context.Context, ev domain.Event) domain.TimerState {
	prev := e.state
	next := domain.Transition(prev, ev)
	e.state = next

	switch ev.(type) {
	case domain.StartEvent, domain.StopEvent, domain.ResetEvent, domain.HydrateEvent, domain.SyncFromTabEvent:
		e.epoch++
	}

	if !prev.IsRunning && next.IsRunning {
		e.guard.Reset()
		e.warning = nil
		if e.mounted {
			e.startTickerLocked()
		}
	}
	if prev.IsRunning && !next.IsRunning {
		if e.warning != nil && e.warning.Type != domain.WarningAutoStopped {
			e.warning = nil
		}
		e.stopTickerLocked()
	}

	e.persistLocked(ctx, ev, prev, next)
	return next
}

// persistLocked keeps the snapshot in line with the state. An idle context
// only deletes the snapshot when it stops or resets, or when it was the
// one running, so it never clobbers a session owned by a peer.
func (e *TimerEngine) persistLocked(ctx context.Context, ev domain.Event, prev, next domain.TimerState) {
	if e.snapshots == nil {
		return
	}
	switch ev.(type) {
	case domain.StopEvent, domain.ResetEvent:
		e.snapshots.Clear(ctx)
		return
	}
	if next.IsRunning || prev.IsRunning {
		e.snapshots.Persist(ctx, next)
	}
}

func (e *TimerEngine) startTickerLocked() {
	if e.ticker != nil {
		return
	}
	e.ticker = NewElapsedTicker(e.config.TickInterval, func() {
		e.Tick(context.Background())
	})
	e.ticker.Start()
}

func (e *TimerEngine) stopTickerLocked() {
	if e.ticker == nil {
		return
	}
	e.ticker.Stop()
	e.ticker = nil
}

func (e *TimerEngine) notify(state domain.TimerState) {
	e.mu.Lock()
	listeners := make([]func(domain.TimerState), 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// finishOrphan closes an entry created by a start whose response arrived
// after the state had moved on
func (e *TimerEngine) finishOrphan(ctx context.Context, entryID string) {
	if _, err := e.entries.Finish(ctx, entryID, ""); err != nil {
		logging.Logger.Warn("Failed to finish orphaned time entry", "entry_id", entryID, "error", err)
	}
}

func (e *TimerEngine) trackStart(ctx context.Context, state domain.TimerState, suggested string) {
	outcome := domain.SuggestionNone
	switch {
	case suggested == "":
	case suggested == state.SelectedMatterID:
		outcome = domain.SuggestionAccepted
	default:
		outcome = domain.SuggestionOverridden
	}

	e.track(ctx, domain.EventStart, map[string]any{
		"entry_id":           state.ActiveEntryID,
		"matter_id":          state.SelectedMatterID,
		"started_at":         state.StartTime.UnixMilli(),
		"suggestion_outcome": outcome,
	})

	switch outcome {
	case domain.SuggestionAccepted:
		e.track(ctx, domain.EventSuggestionAccepted, map[string]any{"matter_id": suggested})
	case domain.SuggestionOverridden:
		e.track(ctx, domain.EventSuggestionOverridden, map[string]any{
			"matter_id":           state.SelectedMatterID,
			"suggested_matter_id": suggested,
		})
	}
}

// track sends an analytics event. Failures are logged and dropped.
func (e *TimerEngine) track(ctx context.Context, name domain.AnalyticsEventName, props map[string]any) {
	if e.analytics == nil {
		return
	}
	event := domain.AnalyticsEvent{
		Name:       name,
		OccurredAt: e.clock.Now(),
		Properties: props,
		Route:      e.config.Route,
	}
	if err := e.analytics.Track(ctx, event); err != nil {
		logging.Logger.Debug("Failed to track analytics event", "event", name, "error", err)
	}
}

func (e *TimerEngine) recordActivity(ctx context.Context, matterID string) {
	if e.activity == nil {
		return
	}
	activity := domain.MatterActivity{
		MatterID:   matterID,
		OccurredAt: e.clock.Now(),
		Route:      e.config.Route,
	}
	if err := e.activity.Record(ctx, activity); err != nil {
		logging.Logger.Debug("Failed to record matter activity", "matter_id", matterID, "error", err)
	}
}

func (e *TimerEngine) playAlert(warning domain.WarningType) {
	if e.alerts == nil {
		return
	}
	if err := e.alerts.PlayAlertFor(warning); err != nil {
		logging.Logger.Debug("Failed to play alert", "warning", warning, "error", err)
	}
}
