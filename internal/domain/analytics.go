package domain

import "time"

// AnalyticsEventName identifies an analytics event
type AnalyticsEventName string

const (
	EventAutoStop             AnalyticsEventName = "timer_auto_stop"
	EventModalClosed          AnalyticsEventName = "timer_modal_closed"
	EventModalOpened          AnalyticsEventName = "timer_modal_opened"
	EventStart                AnalyticsEventName = "timer_started"
	EventStop                 AnalyticsEventName = "timer_stopped"
	EventSuggestionAccepted   AnalyticsEventName = "suggestion_accepted"
	EventSuggestionOverridden AnalyticsEventName = "suggestion_overridden"
	EventSuggestionShown      AnalyticsEventName = "suggestion_shown"
	EventWarningShown         AnalyticsEventName = "timer_warning_shown"
)

// Suggestion outcomes recorded with the start event
const (
	SuggestionAccepted   = "accepted"
	SuggestionNone       = "none"
	SuggestionOverridden = "overridden"
)

// AnalyticsEvent is a fire-and-forget product event
type AnalyticsEvent struct {
	Name       AnalyticsEventName
	OccurredAt time.Time
	Properties map[string]any
	Route      string
}
