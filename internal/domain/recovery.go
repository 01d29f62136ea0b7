package domain

import "time"

// DefaultRecoveryGap is the unload time after which a recovered session is
// reported to the user
const DefaultRecoveryGap = 5 * time.Minute

// RecoveryInfo describes a session resumed from a snapshot at cold start
type RecoveryInfo struct {
	HasSignificantGap bool
	PersistedAt       time.Time
	RecoveredAt       time.Time
	TimeGapSeconds    int64
	WasRecovered      bool
}

// AnalyzeRecovery compares the snapshot write time with now.
// Returns nil when there is nothing to recover.
func AnalyzeRecovery(snap *Snapshot, now time.Time, gapThreshold time.Duration) *RecoveryInfo {
	if snap == nil || !snap.IsRunning {
		return nil
	}
	persisted := snap.PersistedInstant()
	gap := int64(0)
	if d := now.Sub(persisted); d > 0 {
		gap = int64(d / time.Second)
	}
	return &RecoveryInfo{
		HasSignificantGap: time.Duration(gap)*time.Second >= gapThreshold,
		PersistedAt:       persisted,
		RecoveredAt:       now,
		TimeGapSeconds:    gap,
		WasRecovered:      true,
	}
}
