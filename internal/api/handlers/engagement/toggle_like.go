package engagement

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/engagement"
)

// ToggleLikeHandler handles like toggling
type ToggleLikeHandler struct {
	service engagement.Service
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(service engagement.Service) *ToggleLikeHandler {
	return &ToggleLikeHandler{service: service}
}

// HandleToggleLike flips the authenticated actor's like on a content item
// POST /api/content/{contentID}/likes
func (h *ToggleLikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.ToggleLike(r.Context(), contentID, actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Liked"
	if !result.Liked {
		message = "Unliked"
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"liked":      result.Liked,
		"likesCount": result.LikesCount,
		"message":    message,
	})
}
