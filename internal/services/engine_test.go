package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/billclock/internal/adapters/clock"
	"github.com/renato0307/billclock/internal/domain"
	portsmocks "github.com/renato0307/billclock/internal/ports/mocks"
)

func TestTimerEngine_StartTickStopScenario(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	te.startSession(t, "M1", "e1", "")

	st := te.engine.State()
	assert.Equal(t, domain.StatusRunning, st.Status)
	assert.Equal(t, t0, st.StartTime)
	assert.Equal(t, "M1", st.SelectedMatterID)
	assert.Equal(t, "e1", st.ActiveEntryID)
	assert.Equal(t, int64(0), st.ElapsedSeconds)

	te.clock.Advance(5000 * time.Millisecond)
	te.engine.Tick(ctx)
	assert.Equal(t, int64(5), te.engine.State().ElapsedSeconds)

	te.clock.Advance(3600000 * time.Millisecond)
	te.engine.Tick(ctx)
	assert.Equal(t, int64(3605), te.engine.State().ElapsedSeconds)

	te.entries.EXPECT().Finish(mock.Anything, "e1", "").
		Return(domain.FinishResult{ActualMinutes: 61, BillableMinutes: 66}, nil).Once()
	require.NoError(t, te.engine.Stop(ctx, ""))

	st = te.engine.State()
	assert.False(t, st.IsRunning)
	assert.False(t, st.HasStartTime())
	assert.Empty(t, st.ActiveEntryID)
	assert.Equal(t, int64(0), st.ElapsedSeconds)
	assert.Equal(t, domain.StatusIdle, st.Status)
	assert.Nil(t, te.store.snapshot(t))

	stops := te.analytics.named(domain.EventStop)
	require.Len(t, stops, 1)
	assert.Equal(t, 66, stops[0].Properties["billable_minutes"])
	assert.Equal(t, int64(3605), stops[0].Properties["elapsed_seconds"])
	assert.Equal(t, "/matters", stops[0].Route)
}

func TestTimerEngine_StartPersistsSnapshot(t *testing.T) {
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "research")

	snap := te.store.snapshot(t)
	require.NotNil(t, snap)
	assert.True(t, snap.IsRunning)
	assert.Equal(t, t0.UnixMilli(), *snap.StartTime)
	assert.Equal(t, "M1", *snap.SelectedMatterID)
	assert.Equal(t, "e1", *snap.ActiveEntryID)
	assert.Equal(t, "research", snap.Notes)
}

func TestTimerEngine_TickRefreshesSnapshotHeartbeat(t *testing.T) {
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "")

	te.clock.Advance(time.Minute)
	te.engine.Tick(context.Background())

	snap := te.store.snapshot(t)
	require.NotNil(t, snap)
	assert.Equal(t, t0.Add(time.Minute).UnixMilli(), snap.PersistedAt)
}

func TestTimerEngine_ElapsedAfterHydration(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	running := domain.TimerState{
		ActiveEntryID:    "e1",
		IsRunning:        true,
		Notes:            "review",
		SelectedMatterID: "M1",
		StartTime:        t0.Add(-120 * time.Second),
		Status:           domain.StatusRunning,
	}
	data, err := domain.EncodeSnapshot(domain.NewSnapshot(running, t0.Add(-10*time.Second)))
	require.NoError(t, err)
	require.NoError(t, te.store.Set(ctx, DefaultSnapshotKey, data))

	require.NoError(t, te.engine.Mount(ctx))

	st := te.engine.State()
	assert.True(t, st.IsRunning)
	assert.Equal(t, int64(120), st.ElapsedSeconds)
	assert.Equal(t, "M1", st.SelectedMatterID)
	assert.Equal(t, "review", st.Notes)
	assert.Equal(t, "e1", st.ActiveEntryID)

	info := te.engine.Recovery()
	require.NotNil(t, info)
	assert.True(t, info.WasRecovered)
	assert.Equal(t, int64(10), info.TimeGapSeconds)
	assert.False(t, info.HasSignificantGap)

	te.clock.Advance(30 * time.Second)
	te.engine.Resume(ctx)
	assert.Equal(t, int64(150), te.engine.State().ElapsedSeconds)
}

func TestTimerEngine_RecoveryNoticeAfterLongGap(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	running := domain.TimerState{IsRunning: true, StartTime: t0.Add(-time.Hour), ActiveEntryID: "e1"}
	data, err := domain.EncodeSnapshot(domain.NewSnapshot(running, t0.Add(-6*time.Minute)))
	require.NoError(t, err)
	require.NoError(t, te.store.Set(ctx, DefaultSnapshotKey, data))

	require.NoError(t, te.engine.Mount(ctx))

	info := te.engine.Recovery()
	require.NotNil(t, info)
	assert.True(t, info.HasSignificantGap)
	assert.Equal(t, int64(360), info.TimeGapSeconds)
	assert.Len(t, te.analytics.named(domain.EventModalOpened), 1)

	te.engine.AcknowledgeRecovery(ctx)
	assert.Nil(t, te.engine.Recovery())
	assert.Len(t, te.analytics.named(domain.EventModalClosed), 1)
}

func TestTimerEngine_CorruptedSnapshotYieldsInitialState(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	require.NoError(t, te.store.Set(ctx, DefaultSnapshotKey, []byte("not json")))

	require.NoError(t, te.engine.Mount(ctx))

	assert.Equal(t, domain.InitialState(), te.engine.State())
	assert.Nil(t, te.engine.Recovery())
}

func TestTimerEngine_StopWithoutEntryHandle(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	// Running session learned from a peer that had no entry handle
	te.engine.handleMessage(domain.Message{
		Type:    domain.MessageStarted,
		Started: &domain.StartedPayload{StartTime: t0.Add(-time.Minute).UnixMilli()},
	})
	require.True(t, te.engine.State().IsRunning)

	require.NoError(t, te.engine.Stop(ctx, ""))
	assert.False(t, te.engine.State().IsRunning)

	te.clock.Advance(time.Second)
	require.NoError(t, te.engine.Stop(ctx, ""))
	assert.False(t, te.engine.State().IsRunning)
	// No Finish expectation: the mock fails the test if it is called
}

func TestTimerEngine_RateLimiting(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	rejected := errors.New("rejected")

	te.entries.EXPECT().Create(mock.Anything, "M1", "").Return("", rejected).Times(2)

	err := te.engine.Start(ctx, "M1", "")
	assert.ErrorIs(t, err, rejected)

	te.clock.Advance(100 * time.Millisecond)
	assert.NoError(t, te.engine.Start(ctx, "M1", ""))

	te.clock.Advance(600 * time.Millisecond)
	assert.ErrorIs(t, te.engine.Start(ctx, "M1", ""), rejected)
}

func TestTimerEngine_StartFailures(t *testing.T) {
	tests := []struct {
		name    string
		entryID string
		err     error
		wantErr error
	}{
		{name: "service error", err: errors.New("service unavailable"), wantErr: nil},
		{name: "missing entry handle", entryID: "", err: nil, wantErr: domain.ErrMissingEntryHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEngine(t, nil)
			te.entries.EXPECT().Create(mock.Anything, "M1", "").Return(tt.entryID, tt.err).Once()

			err := te.engine.Start(context.Background(), "M1", "")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			st := te.engine.State()
			assert.False(t, st.IsRunning)
			assert.Equal(t, domain.StatusError, st.Status)
			assert.NotEmpty(t, st.Error)
			assert.Nil(t, te.store.snapshot(t))

			te.engine.ClearError(context.Background())
			assert.Equal(t, domain.StatusIdle, te.engine.State().Status)
		})
	}
}

func TestTimerEngine_StartUsesSelectedMatter(t *testing.T) {
	te := newTestEngine(t, nil)
	te.engine.UpdateMatter(context.Background(), "M7")
	te.entries.EXPECT().Create(mock.Anything, "M7", "").Return("e1", nil).Once()

	require.NoError(t, te.engine.Start(context.Background(), "", ""))
	assert.Equal(t, "M7", te.engine.State().SelectedMatterID)
}

func TestTimerEngine_StartWhileRunning(t *testing.T) {
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "")

	te.clock.Advance(time.Second)
	err := te.engine.Start(context.Background(), "M2", "")
	assert.ErrorIs(t, err, domain.ErrTimerRunning)
	assert.Equal(t, "e1", te.engine.State().ActiveEntryID)
}

func TestTimerEngine_FailedStopPreservesSession(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "notes")

	te.clock.Advance(time.Minute)
	te.entries.EXPECT().Finish(mock.Anything, "e1", "notes").
		Return(domain.FinishResult{}, errors.New("network down")).Once()

	err := te.engine.Stop(ctx, "")
	require.Error(t, err)

	st := te.engine.State()
	assert.True(t, st.IsRunning)
	assert.Equal(t, domain.StatusError, st.Status)
	assert.Contains(t, st.Error, "network down")
	assert.Equal(t, "e1", st.ActiveEntryID)
	assert.NotNil(t, te.store.snapshot(t))

	te.engine.ClearError(ctx)
	assert.Equal(t, domain.StatusRunning, te.engine.State().Status)
}

func TestTimerEngine_StopOfAlreadyFinishedEntry(t *testing.T) {
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "")

	te.clock.Advance(time.Minute)
	te.entries.EXPECT().Finish(mock.Anything, "e1", "").
		Return(domain.FinishResult{}, domain.ErrEntryFinished).Once()

	require.NoError(t, te.engine.Stop(context.Background(), ""))
	assert.False(t, te.engine.State().IsRunning)
	assert.Empty(t, te.engine.State().Error)
}

func TestTimerEngine_StaleStartResponseIsDiscarded(t *testing.T) {
	te := newTestEngine(t, nil)
	peerStart := t0.Add(-time.Minute)
	peerEntry := "peer-entry"
	peerMatter := "M9"

	te.entries.EXPECT().Create(mock.Anything, "M1", "").
		Run(func(ctx context.Context, matterID, notes string) {
			// A peer's session arrives while the call is in flight
			te.engine.handleMessage(domain.Message{
				Type: domain.MessageStarted,
				Started: &domain.StartedPayload{
					ActiveEntryID:    &peerEntry,
					SelectedMatterID: &peerMatter,
					StartTime:        peerStart.UnixMilli(),
				},
			})
		}).
		Return("late-entry", nil).Once()
	te.entries.EXPECT().Finish(mock.Anything, "late-entry", "").Return(domain.FinishResult{}, nil).Once()

	require.NoError(t, te.engine.Start(context.Background(), "M1", ""))

	st := te.engine.State()
	assert.True(t, st.IsRunning)
	assert.Equal(t, peerEntry, st.ActiveEntryID)
	assert.Equal(t, peerMatter, st.SelectedMatterID)
	assert.Equal(t, int64(60), st.ElapsedSeconds)
}

func TestTimerEngine_StaleStopResponseIsIgnored(t *testing.T) {
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "")
	te.clock.Advance(time.Minute)

	te.entries.EXPECT().Finish(mock.Anything, "e1", "").
		Run(func(ctx context.Context, entryID, notes string) {
			te.engine.handleMessage(domain.Message{Type: domain.MessageReset})
		}).
		Return(domain.FinishResult{}, errors.New("timeout")).Once()

	require.NoError(t, te.engine.Stop(context.Background(), ""))

	st := te.engine.State()
	assert.False(t, st.IsRunning)
	assert.Empty(t, st.Error)
	assert.Equal(t, domain.StatusIdle, st.Status)
}

func TestTimerEngine_WarningThresholds(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "")

	te.clock.Set(t0.Add(8*time.Hour - time.Second))
	te.engine.Tick(ctx)
	assert.Nil(t, te.engine.Warning())

	te.alerts.EXPECT().PlayAlertFor(domain.WarningEightHour).Return(nil).Once()
	te.clock.Set(t0.Add(8 * time.Hour))
	te.engine.Tick(ctx)

	w := te.engine.Warning()
	require.NotNil(t, w)
	assert.Equal(t, domain.WarningEightHour, w.Type)
	assert.Equal(t, int64(28800), w.ElapsedSeconds)

	te.clock.Advance(10 * time.Second)
	te.engine.Tick(ctx)
	te.engine.Tick(ctx)
	assert.Len(t, te.analytics.named(domain.EventWarningShown), 1)

	te.alerts.EXPECT().PlayAlertFor(domain.WarningAutoStopped).Return(nil).Once()
	te.entries.EXPECT().Finish(mock.Anything, "e1", "").Return(domain.FinishResult{}, nil).Once()
	te.clock.Set(t0.Add(24 * time.Hour))
	te.engine.Tick(ctx)

	assert.False(t, te.engine.State().IsRunning)
	w = te.engine.Warning()
	require.NotNil(t, w)
	assert.Equal(t, domain.WarningAutoStopped, w.Type)
	assert.Len(t, te.analytics.named(domain.EventAutoStop), 1)

	te.engine.Tick(ctx)
	assert.Len(t, te.analytics.named(domain.EventAutoStop), 1)

	te.engine.AcknowledgeWarning(ctx)
	assert.Nil(t, te.engine.Warning())
}

func TestTimerEngine_WarningClearedOnManualStop(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	te.startSession(t, "M1", "e1", "")

	te.alerts.EXPECT().PlayAlertFor(domain.WarningEightHour).Return(nil).Once()
	te.clock.Set(t0.Add(9 * time.Hour))
	te.engine.Tick(ctx)
	require.NotNil(t, te.engine.Warning())

	te.entries.EXPECT().Finish(mock.Anything, "e1", "").Return(domain.FinishResult{}, nil).Once()
	require.NoError(t, te.engine.Stop(ctx, ""))
	assert.Nil(t, te.engine.Warning())
}

func TestTimerEngine_WarningRearmsForNewSession(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	te.alerts.EXPECT().PlayAlertFor(domain.WarningEightHour).Return(nil).Times(2)

	te.startSession(t, "M1", "e1", "")
	te.clock.Advance(8 * time.Hour)
	te.engine.Tick(ctx)

	te.entries.EXPECT().Finish(mock.Anything, "e1", "").Return(domain.FinishResult{}, nil).Once()
	require.NoError(t, te.engine.Stop(ctx, ""))

	te.clock.Advance(time.Second)
	te.startSession(t, "M1", "e2", "")
	te.clock.Advance(8 * time.Hour)
	te.engine.Tick(ctx)

	assert.Len(t, te.analytics.named(domain.EventWarningShown), 2)
}

func TestTimerEngine_AutoStopBypassesCooldown(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil, func(cfg *EngineConfig) {
		cfg.ActionCooldown = time.Hour
		cfg.Thresholds = domain.DurationThresholds{AutoStop: 2 * time.Second, Warning: time.Second}
	})
	te.alerts.EXPECT().PlayAlertFor(domain.WarningAutoStopped).Return(nil).Once()

	te.startSession(t, "M1", "e1", "")
	te.entries.EXPECT().Finish(mock.Anything, "e1", "").Return(domain.FinishResult{}, nil).Once()

	te.clock.Advance(2 * time.Second)
	te.engine.Tick(ctx)

	assert.False(t, te.engine.State().IsRunning)
}

func TestTimerEngine_FailedAutoStopIsNotRetried(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	te.alerts.EXPECT().PlayAlertFor(domain.WarningAutoStopped).Return(nil).Once()

	te.startSession(t, "M1", "e1", "")
	te.entries.EXPECT().Finish(mock.Anything, "e1", "").
		Return(domain.FinishResult{}, errors.New("offline")).Once()

	te.clock.Advance(25 * time.Hour)
	te.engine.Tick(ctx)
	te.engine.Tick(ctx)

	st := te.engine.State()
	assert.True(t, st.IsRunning)
	assert.Equal(t, domain.StatusError, st.Status)
}

func TestTimerEngine_ResetKeepsSuggestion(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)
	te.engine.SetSuggestedMatter(ctx, &domain.MatterSuggestion{MatterID: "M2", Reason: domain.ReasonMostRecent})
	te.startSession(t, "M2", "e1", "")

	te.engine.Reset(ctx)

	want := domain.InitialState()
	want.SuggestedMatterID = "M2"
	assert.Equal(t, want, te.engine.State())
	assert.Nil(t, te.store.snapshot(t))
}

func TestTimerEngine_SuggestionOutcome(t *testing.T) {
	tests := []struct {
		name        string
		suggested   string
		chosen      string
		wantOutcome string
		wantEvent   domain.AnalyticsEventName
	}{
		{name: "accepted", suggested: "M2", chosen: "M2", wantOutcome: domain.SuggestionAccepted, wantEvent: domain.EventSuggestionAccepted},
		{name: "overridden", suggested: "M2", chosen: "M3", wantOutcome: domain.SuggestionOverridden, wantEvent: domain.EventSuggestionOverridden},
		{name: "none", chosen: "M3", wantOutcome: domain.SuggestionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			te := newTestEngine(t, nil)
			if tt.suggested != "" {
				te.engine.SetSuggestedMatter(ctx, &domain.MatterSuggestion{MatterID: tt.suggested, Reason: domain.ReasonRouteMatch})
				assert.Len(t, te.analytics.named(domain.EventSuggestionShown), 1)
			}

			te.startSession(t, tt.chosen, "e1", "")

			starts := te.analytics.named(domain.EventStart)
			require.Len(t, starts, 1)
			assert.Equal(t, tt.wantOutcome, starts[0].Properties["suggestion_outcome"])
			if tt.wantEvent != "" {
				assert.Len(t, te.analytics.named(tt.wantEvent), 1)
			}
		})
	}
}

func TestTimerEngine_SuggestionNeverClobbersSelection(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	te.engine.UpdateMatter(ctx, "M1")
	te.engine.SetSuggestedMatter(ctx, &domain.MatterSuggestion{MatterID: "M2"})

	st := te.engine.State()
	assert.Equal(t, "M1", st.SelectedMatterID)
	assert.Equal(t, "M2", st.SuggestedMatterID)
}

func TestTimerEngine_UpdateNotesPersistsWhileRunning(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	te.engine.UpdateNotes(ctx, "idle notes")
	assert.Nil(t, te.store.snapshot(t))

	te.startSession(t, "M1", "e1", "")
	te.engine.UpdateNotes(ctx, "drafting brief")

	snap := te.store.snapshot(t)
	require.NotNil(t, snap)
	assert.Equal(t, "drafting brief", snap.Notes)
}

func TestTimerEngine_OnChange(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, nil)

	var seen []domain.TimerState
	remove := te.engine.OnChange(func(s domain.TimerState) {
		seen = append(seen, s)
	})

	te.engine.UpdateNotes(ctx, "a")
	remove()
	te.engine.UpdateNotes(ctx, "b")

	require.Len(t, seen, 1)
	assert.Equal(t, "a", seen[0].Notes)
}

func TestTimerEngine_TickWhileIdleDoesNothing(t *testing.T) {
	te := newTestEngine(t, nil)
	te.clock.Advance(time.Hour)
	te.engine.Tick(context.Background())
	assert.Equal(t, domain.InitialState(), te.engine.State())
}

func TestTimerEngine_AnalyticsAndActivityFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	sinkErr := errors.New("sink down")

	var tracked []domain.AnalyticsEventName
	analytics := portsmocks.NewMockAnalyticsSink(t)
	analytics.EXPECT().Track(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event domain.AnalyticsEvent) {
			tracked = append(tracked, event.Name)
		}).
		Return(sinkErr)

	activity := portsmocks.NewMockActivityWriter(t)
	activity.EXPECT().Record(mock.Anything, mock.MatchedBy(func(a domain.MatterActivity) bool {
		return a.MatterID == "M1"
	})).Return(sinkErr).Once()

	alerts := portsmocks.NewMockAlertPlayer(t)
	alerts.EXPECT().PlayAlertFor(domain.WarningEightHour).Return(sinkErr).Once()

	entries := portsmocks.NewMockTimeEntryService(t)
	entries.EXPECT().Create(mock.Anything, "M1", "").Return("e1", nil).Once()
	entries.EXPECT().Finish(mock.Anything, "e1", "").
		Return(domain.FinishResult{ActualMinutes: 541, BillableMinutes: 546}, nil).Once()

	clk := clock.NewManual(t0)
	store := newMemoryStore()
	engine := NewTimerEngine(EngineDeps{
		Activity:  activity,
		Alerts:    alerts,
		Analytics: analytics,
		Clock:     clk,
		Entries:   entries,
		Snapshots: NewSnapshotRepository(store, clk, DefaultSnapshotKey),
	}, testConfig())
	t.Cleanup(engine.Unmount)

	require.NoError(t, engine.Start(ctx, "M1", ""))
	assert.True(t, engine.State().IsRunning)
	assert.Empty(t, engine.State().Error)

	clk.Set(t0.Add(9 * time.Hour))
	engine.Tick(ctx)
	w := engine.Warning()
	require.NotNil(t, w)
	assert.Equal(t, domain.WarningEightHour, w.Type)
	assert.True(t, engine.State().IsRunning)

	require.NoError(t, engine.Stop(ctx, ""))
	st := engine.State()
	assert.False(t, st.IsRunning)
	assert.Equal(t, domain.StatusIdle, st.Status)
	assert.Empty(t, st.Error)

	assert.Contains(t, tracked, domain.EventStart)
	assert.Contains(t, tracked, domain.EventWarningShown)
	assert.Contains(t, tracked, domain.EventStop)
}
