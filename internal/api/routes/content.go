package routes

import (
	"github.com/go-chi/chi/v5"

	contentHandlers "Inkwell/internal/api/handlers/content"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/content"
)

// RegisterContentRoutes registers content CRUD and dashboard endpoints
// Authoring is moderator-only; reads are public with optional viewer identity
func RegisterContentRoutes(r chi.Router, service content.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := contentHandlers.NewCreateContentHandler(service)
	getHandler := contentHandlers.NewGetContentHandler(service)
	listHandler := contentHandlers.NewListContentHandler(service)
	updateHandler := contentHandlers.NewUpdateContentHandler(service)
	deleteHandler := contentHandlers.NewDeleteContentHandler(service)
	dashboardHandler := contentHandlers.NewDashboardHandler(service)

	r.With(authMiddleware.RequireModerator).Post("/api/content", createHandler.HandleCreateContent)
	r.With(authMiddleware.RequireModerator).Get("/api/content/dashboard", dashboardHandler.HandleDashboard)
	r.With(authMiddleware.RequireModerator).Patch("/api/content/{contentID}", updateHandler.HandleUpdateContent)
	r.With(authMiddleware.RequireModerator).Delete("/api/content/{contentID}", deleteHandler.HandleDeleteContent)

	r.With(authMiddleware.OptionalAuth).Get("/api/content", listHandler.HandleListContent)
	r.With(authMiddleware.OptionalAuth).Get("/api/content/{contentID}", getHandler.HandleGetContent)
}
