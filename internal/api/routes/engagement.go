package routes

import (
	"github.com/go-chi/chi/v5"

	engagementHandlers "Inkwell/internal/api/handlers/engagement"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/engagement"
)

// RegisterEngagementRoutes registers the ledger's write endpoints
// Views and likes require a resolved actor identity
func RegisterEngagementRoutes(r chi.Router, service engagement.Service, authMiddleware *middleware.AuthMiddleware) {
	recordViewHandler := engagementHandlers.NewRecordViewHandler(service)
	toggleLikeHandler := engagementHandlers.NewToggleLikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/content/{contentID}/views", recordViewHandler.HandleRecordView)
	r.With(authMiddleware.RequireAuth).Post("/api/content/{contentID}/likes", toggleLikeHandler.HandleToggleLike)
}
