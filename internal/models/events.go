package models

import "encoding/json"

// Event names on the relay wire. Inbound events arrive from clients, outbound
// events are emitted by the relay.
const (
	// Inbound.
	EventSendMessage     = "send-message"
	EventScheduleSession = "schedule-session"

	// Outbound.
	EventPreviousMessages = "previous-messages"
	EventMessage          = "message"
	EventSessionScheduled = "session-scheduled"
)

// InboundEvent is the envelope every client frame is wrapped in. Data is
// decoded per Event once the envelope is recognized.
type InboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent is the envelope for relay-to-client traffic.
type OutboundEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
