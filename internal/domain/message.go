package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MessageType identifies a bus message variant
type MessageType string

const (
	MessageReset         MessageType = "RESET"
	MessageStarted       MessageType = "STARTED"
	MessageStateRequest  MessageType = "STATE_REQUEST"
	MessageStateResponse MessageType = "STATE_RESPONSE"
	MessageStopped       MessageType = "STOPPED"
)

// StartedPayload is carried by STARTED
type StartedPayload struct {
	ActiveEntryID    *string `json:"activeEntryId"`
	SelectedMatterID *string `json:"selectedMatterId"`
	StartTime        int64   `json:"startTime"`
}

// Message is a convergence hint exchanged between contexts.
// Receivers re-derive their own state from it; it is never replayed blindly.
type Message struct {
	Snapshot *Snapshot
	Started  *StartedPayload
	Type     MessageType
}

// NewStartedMessage builds STARTED from a running state
func NewStartedMessage(s TimerState) Message {
	return Message{
		Type: MessageStarted,
		Started: &StartedPayload{
			ActiveEntryID:    optionalString(s.ActiveEntryID),
			SelectedMatterID: optionalString(s.SelectedMatterID),
			StartTime:        s.StartTime.UnixMilli(),
		},
	}
}

// NewStateResponse builds STATE_RESPONSE carrying a full snapshot
func NewStateResponse(snap Snapshot) Message {
	return Message{Type: MessageStateResponse, Snapshot: &snap}
}

// StartInstant returns the start time carried by STARTED
func (p StartedPayload) StartInstant() time.Time {
	if p.StartTime <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(p.StartTime)
}

type wireMessage struct {
	Payload json.RawMessage `json:"payload"`
	Type    MessageType     `json:"type"`
}

// MarshalJSON encodes the tagged union {type, payload}
func (m Message) MarshalJSON() ([]byte, error) {
	var payload any
	switch m.Type {
	case MessageStarted:
		if m.Started == nil {
			return nil, fmt.Errorf("%w: STARTED without payload", ErrInvalidMessage)
		}
		payload = m.Started
	case MessageStateResponse:
		if m.Snapshot == nil {
			return nil, fmt.Errorf("%w: STATE_RESPONSE without snapshot", ErrInvalidMessage)
		}
		payload = m.Snapshot
	case MessageStopped, MessageReset, MessageStateRequest:
		payload = nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, m.Type)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{Type: m.Type, Payload: raw})
}

// UnmarshalJSON decodes the tagged union {type, payload}
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	msg := Message{Type: w.Type}
	switch w.Type {
	case MessageStarted:
		var p StartedPayload
		if err := json.Unmarshal(w.Payload, &p); err != nil || p.StartTime <= 0 {
			return fmt.Errorf("%w: bad STARTED payload", ErrInvalidMessage)
		}
		msg.Started = &p
	case MessageStateResponse:
		snap, err := DecodeSnapshot(w.Payload)
		if err != nil {
			return fmt.Errorf("%w: bad STATE_RESPONSE payload", ErrInvalidMessage)
		}
		msg.Snapshot = snap
	case MessageStopped, MessageReset, MessageStateRequest:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, w.Type)
	}

	*m = msg
	return nil
}

// EncodeMessage serializes a message to its JSON wire form
func EncodeMessage(m Message) ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMessage parses a message, returning ErrInvalidMessage for anything
// that is not a well-formed variant
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		if errors.Is(err, ErrInvalidMessage) {
			return Message{}, err
		}
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return m, nil
}

// Envelope wraps a message for transport. Origin lets a bus drop a context's
// own messages; it carries no ordering guarantee.
type Envelope struct {
	Channel string
	Message Message
	Origin  string
	SentAt  time.Time
}
