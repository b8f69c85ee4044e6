package comment

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/comments"
)

// ListCommentsHandler handles thread reads
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{service: service}
}

// HandleListComments returns a content item's thread, newest first
// GET /api/comments/{contentID}
func (h *ListCommentsHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	thread, err := h.service.ListComments(r.Context(), contentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comments": thread,
	})
}
