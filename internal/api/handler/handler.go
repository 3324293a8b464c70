package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"skillswap/backend/internal/config"
	"skillswap/backend/internal/relay"
)

// Handler holds the relay hub and the upgrade policy for the /ws endpoint.
type Handler struct {
	hub      *relay.Hub
	cfg      config.Config
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func New(hub *relay.Hub, cfg config.Config, log *zap.Logger) *Handler {
	return &Handler{
		hub: hub,
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigin),
		},
	}
}

// originChecker allows any origin when none is configured. Requests without
// an Origin header (non-browser clients) always pass.
func originChecker(allowed string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if allowed == "" {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || origin == allowed
	}
}
