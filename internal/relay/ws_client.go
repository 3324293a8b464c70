package relay

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"skillswap/backend/internal/models"
	"skillswap/backend/internal/observability"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements Client over a gorilla/websocket connection.
// matchID and userID are fixed at upgrade time and never change for the life
// of the connection.
type WebSocketClient struct {
	connID   string
	matchID  string
	userID   string
	userName string

	hub  *Hub
	conn *websocket.Conn
	send chan models.OutboundEvent
	done chan struct{}

	closed atomic.Bool
	log    *zap.Logger
}

func NewWebSocketClient(hub *Hub, conn *websocket.Conn, matchID, userID, userName string, queueSize int, log *zap.Logger) *WebSocketClient {
	return &WebSocketClient{
		connID:   uuid.NewString(),
		matchID:  matchID,
		userID:   userID,
		userName: userName,
		hub:      hub,
		conn:     conn,
		send:     make(chan models.OutboundEvent, queueSize),
		done:     make(chan struct{}),
		log:      log,
	}
}

func (c *WebSocketClient) GetConnectionID() string { return c.connID }
func (c *WebSocketClient) GetMatchID() string      { return c.matchID }
func (c *WebSocketClient) GetUserID() string       { return c.userID }

func (c *WebSocketClient) TrySend(ev models.OutboundEvent) bool {
	if c.closed.Load() {
		return false
	}
	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close is idempotent. It sends a close frame on a best-effort basis and
// tears the connection down; the read pump's exit then triggers the single
// unregister for this connection.
func (c *WebSocketClient) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	close(c.done)

	deadline := time.Now().Add(time.Second)
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	_ = c.conn.Close()
}

// readPump reads frames until the connection dies, for any reason. Voluntary
// disconnects, network failures, and server-side closes all funnel through
// the same deferred unregister, exactly once.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.hub.UnregisterCh <- c
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Debug("read error",
					zap.String("user_id", c.userID),
					zap.Error(err))
			}
			return
		}
		c.dispatch(raw)
	}
}

// dispatch decodes an inbound envelope and hands the typed event to the hub.
// Frames that do not decode are skipped; the relay surfaces no error to the
// sender.
func (c *WebSocketClient) dispatch(raw []byte) {
	var ev models.InboundEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		observability.ValidationDrops.WithLabelValues("frame").Inc()
		c.log.Debug("dropping undecodable frame",
			zap.String("user_id", c.userID),
			zap.Error(err))
		return
	}

	switch ev.Event {
	case models.EventSendMessage:
		var msg models.Message
		if err := json.Unmarshal(ev.Data, &msg); err != nil {
			observability.ValidationDrops.WithLabelValues(models.EventSendMessage).Inc()
			return
		}
		// Identity is external; the relay only fills gaps, it never
		// overrides what the client sent.
		if msg.SenderID == "" {
			msg.SenderID = c.userID
		}
		if msg.SenderName == "" {
			msg.SenderName = c.userName
		}
		c.hub.MessageCh <- InboundMessage{Client: c, Message: msg}

	case models.EventScheduleSession:
		var p models.ScheduleProposal
		if err := json.Unmarshal(ev.Data, &p); err != nil {
			observability.ValidationDrops.WithLabelValues(models.EventScheduleSession).Inc()
			return
		}
		if p.RequesterID == "" {
			p.RequesterID = c.userID
		}
		c.hub.ScheduleCh <- InboundProposal{Client: c, Proposal: p}

	default:
		observability.ValidationDrops.WithLabelValues("frame").Inc()
		c.log.Debug("dropping unknown event",
			zap.String("user_id", c.userID),
			zap.String("event", ev.Event))
	}
}

// writePump drains the send queue to the socket and keeps the connection
// alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				c.log.Debug("write error",
					zap.String("user_id", c.userID),
					zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
