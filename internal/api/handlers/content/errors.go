package content

import (
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/content"
)

// handleServiceError converts content service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrContentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "ContentNotFound", "Content not found")
	case errors.Is(err, content.ErrMissingFields):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Title, body and author are required")
	default:
		log.Printf("Content handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
