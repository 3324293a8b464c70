package relay_test

import (
	"sync/atomic"

	"skillswap/backend/internal/models"
)

// MockClient stands in for a WebSocket connection in hub and registry tests.
// Events sent to it land in Recv instead of a socket.
type MockClient struct {
	connID  string
	matchID string
	userID  string

	Recv   chan models.OutboundEvent
	closed atomic.Bool
}

func newMockClient(connID, matchID, userID string) *MockClient {
	return newMockClientCap(connID, matchID, userID, 16)
}

func newMockClientCap(connID, matchID, userID string, queueSize int) *MockClient {
	return &MockClient{
		connID:  connID,
		matchID: matchID,
		userID:  userID,
		Recv:    make(chan models.OutboundEvent, queueSize),
	}
}

func (c *MockClient) GetConnectionID() string { return c.connID }
func (c *MockClient) GetMatchID() string      { return c.matchID }
func (c *MockClient) GetUserID() string       { return c.userID }

func (c *MockClient) TrySend(ev models.OutboundEvent) bool {
	if c.closed.Load() {
		return false
	}
	select {
	case c.Recv <- ev:
		return true
	default:
		return false
	}
}

func (c *MockClient) Run() {}

func (c *MockClient) Close() { c.closed.Store(true) }

func (c *MockClient) Closed() bool { return c.closed.Load() }
