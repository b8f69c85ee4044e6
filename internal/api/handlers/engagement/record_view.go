package engagement

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/engagement"
)

// RecordViewHandler handles unique view recording
type RecordViewHandler struct {
	service engagement.Service
}

// NewRecordViewHandler creates a new record view handler
func NewRecordViewHandler(service engagement.Service) *RecordViewHandler {
	return &RecordViewHandler{service: service}
}

// HandleRecordView records a unique view for the authenticated actor
// POST /api/content/{contentID}/views
//
// A repeated view is a success with "alreadyRecorded": true, never an error
func (h *RecordViewHandler) HandleRecordView(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.RecordView(r.Context(), contentID, actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "New unique view recorded"
	if result.AlreadyRecorded {
		message = "View already counted for this actor"
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"alreadyRecorded": result.AlreadyRecorded,
		"viewsCount":      result.ViewsCount,
		"message":         message,
	})
}
