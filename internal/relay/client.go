package relay

import "skillswap/backend/internal/models"

// Client is one live relay connection. It abstracts the underlying transport
// so the hub can manage WebSocket connections and test doubles uniformly.
type Client interface {
	// GetConnectionID returns the relay-assigned identifier for this
	// connection.
	GetConnectionID() string
	// GetMatchID returns the match this connection belongs to. A connection
	// belongs to exactly one match for its whole lifetime.
	GetMatchID() string
	// GetUserID returns the opaque user id the connection was admitted with.
	GetUserID() string

	// TrySend enqueues an outbound event without blocking. It reports false
	// when the client's queue is full or the client is closed; the hub
	// disconnects such clients rather than stall the match.
	TrySend(ev models.OutboundEvent) bool

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts the connection down. Safe to call more than once.
	Close()
}
