package comment

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// AddCommentHandler handles comment creation
type AddCommentHandler struct {
	service comments.Service
}

// NewAddCommentHandler creates a new add comment handler
func NewAddCommentHandler(service comments.Service) *AddCommentHandler {
	return &AddCommentHandler{service: service}
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// HandleAddComment appends a comment to a content item's thread
// POST /api/content/{contentID}/comments
//
// Request body: { "text": "..." }
func (h *AddCommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.AddComment(r.Context(), contentID, actorID, middleware.GetActorName(r), req.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"comment":       result.Comment,
		"commentsCount": result.CommentsCount,
	})
}
