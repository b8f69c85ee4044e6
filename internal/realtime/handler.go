package realtime

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests into delta-stream sessions
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// actorFromRequest resolves the optional viewer identity
	// Anonymous subscribers are allowed: the stream carries no private data
	actorFromRequest func(r *http.Request) string
}

// NewHandler creates the websocket subscribe handler
func NewHandler(hub *Hub, logger *slog.Logger, actorFromRequest func(r *http.Request) string) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if actorFromRequest == nil {
		actorFromRequest = func(*http.Request) string { return "" }
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The stream is read-only state deltas; cross-origin pages
			// (the public reading side) are expected subscribers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		actorFromRequest: actorFromRequest,
	}
}

// HandleSubscribe upgrades the connection and runs the session until it drops
// GET /ws
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	session := NewSession(h.hub, conn, h.actorFromRequest(r), h.logger)
	session.Run()
}
