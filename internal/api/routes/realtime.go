package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/realtime"
)

// RegisterRealtimeRoutes registers the delta-stream subscribe endpoint
func RegisterRealtimeRoutes(r chi.Router, handler *realtime.Handler) {
	r.Get("/ws", handler.HandleSubscribe)
}
