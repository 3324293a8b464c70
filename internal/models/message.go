package models

import "time"

// Message is one chat message relayed within a match. Messages are immutable
// once accepted: the relay appends them to the match history and never mutates
// or deletes them afterwards.
type Message struct {
	// ID is the message identifier. The relay assigns one when the client
	// did not.
	ID string `json:"id"`
	// SenderID is the opaque user id issued by the external identity provider.
	SenderID string `json:"senderId"`
	// SenderName is the display name, carried as-is for rendering by peers.
	SenderName string `json:"sender"`
	// Content is the message body. Empty content is dropped by the relay.
	Content string `json:"content" validate:"required"`
	// Timestamp is the relay-observed time unless the client supplied one.
	// Ordering within a match never depends on it; arrival order at the
	// relay is the single source of ordering truth.
	Timestamp time.Time `json:"timestamp"`
}

// ScheduleProposal is a structured, non-chat event proposing a date and time
// for a skill-exchange session. Proposals are validated and re-broadcast but
// never stored, so they cannot be recovered through history replay.
type ScheduleProposal struct {
	MatchID     string `json:"matchId"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	RequesterID string `json:"requesterId"`
}
