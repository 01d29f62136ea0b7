package domain

import "time"

// BillingIncrement is the granularity billable minutes are rounded up to
const BillingIncrement = 6 * time.Minute

// TimeEntry is a billable time record kept by the time-entry service
type TimeEntry struct {
	BillableMinutes int
	FinishedAt      *time.Time
	ID              string
	MatterID        string
	Minutes         int
	Notes           string
	StartedAt       time.Time
}

// IsOpen reports whether the entry has not been finished yet
func (e TimeEntry) IsOpen() bool {
	return e.FinishedAt == nil
}

// FinishResult is returned by the time-entry service when an entry is finished
type FinishResult struct {
	ActualMinutes   int
	BillableMinutes int
}

// ComputeMinutes rounds a worked duration up to whole actual minutes and up
// to the next billing increment. Zero work bills nothing.
func ComputeMinutes(worked time.Duration) FinishResult {
	if worked <= 0 {
		return FinishResult{}
	}
	actual := int((worked + time.Minute - 1) / time.Minute)
	inc := int(BillingIncrement / time.Minute)
	billable := ((actual + inc - 1) / inc) * inc
	return FinishResult{ActualMinutes: actual, BillableMinutes: billable}
}

// MatterActivity records that a matter was worked on from a route
type MatterActivity struct {
	MatterID   string
	OccurredAt time.Time
	Route      string
}

// MatterSuggestion is the matter the user most likely wants to track
type MatterSuggestion struct {
	MatterID string
	Reason   string
}

// Suggestion reasons
const (
	ReasonMostRecent = "most_recent"
	ReasonRouteMatch = "route_match"
)
