package comment

import (
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/comments"
)

// handleServiceError converts comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrUnauthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, comments.ErrEmptyText):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment text cannot be empty")
	case errors.Is(err, comments.ErrContentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "ContentNotFound", "Content not found")
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "Only the comment author or a moderator can delete a comment")
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
