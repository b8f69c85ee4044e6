package routes

import (
	"github.com/go-chi/chi/v5"

	commentHandlers "Inkwell/internal/api/handlers/comment"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// RegisterCommentRoutes registers comment thread endpoints
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.AuthMiddleware) {
	addHandler := commentHandlers.NewAddCommentHandler(service)
	removeHandler := commentHandlers.NewRemoveCommentHandler(service)
	listHandler := commentHandlers.NewListCommentsHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/content/{contentID}/comments", addHandler.HandleAddComment)
	r.With(authMiddleware.RequireAuth).Delete("/api/comments/{commentID}", removeHandler.HandleRemoveComment)

	r.Get("/api/comments/{contentID}", listHandler.HandleListComments)
}
