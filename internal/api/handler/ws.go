package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/backend/internal/relay"
)

// ServeWebSocket admits a relay connection. Both identifiers arrive as query
// parameters; a request missing either is rejected before the upgrade and
// never sees a previous-messages replay.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	matchID := c.Query("matchId")
	userID := c.Query("userId")
	if matchID == "" || userID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "matchId and userId are required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := relay.NewWebSocketClient(h.hub, conn, matchID, userID, c.Query("userName"), h.cfg.SendQueueSize, h.log)
	h.hub.RegisterCh <- client
	client.Run()
}
