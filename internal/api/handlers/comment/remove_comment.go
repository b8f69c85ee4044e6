package comment

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// RemoveCommentHandler handles comment deletion
type RemoveCommentHandler struct {
	service comments.Service
}

// NewRemoveCommentHandler creates a new remove comment handler
func NewRemoveCommentHandler(service comments.Service) *RemoveCommentHandler {
	return &RemoveCommentHandler{service: service}
}

// HandleRemoveComment hard-deletes a comment
// DELETE /api/comments/{commentID}
//
// Allowed for the comment's author and for moderators; the role comes from
// the caller's identity token
func (h *RemoveCommentHandler) HandleRemoveComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := handlers.URLParamInt64(w, r, "commentID")
	if !ok {
		return
	}

	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.RemoveComment(r.Context(), commentID, actorID, middleware.GetActorRole(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"commentsCount": result.CommentsCount,
		"message":       "Comment deleted",
	})
}
