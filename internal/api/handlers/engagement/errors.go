package engagement

import (
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/engagement"
)

// handleServiceError converts ledger service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engagement.ErrUnauthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, engagement.ErrContentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "ContentNotFound", "Content not found")
	case errors.Is(err, engagement.ErrToggleContention):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Toggle contention, please retry")
	default:
		log.Printf("Engagement handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
