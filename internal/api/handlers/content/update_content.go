package content

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/content"
)

// UpdateContentHandler handles partial content updates
type UpdateContentHandler struct {
	service content.Service
}

// NewUpdateContentHandler creates a new update content handler
func NewUpdateContentHandler(service content.Service) *UpdateContentHandler {
	return &UpdateContentHandler{service: service}
}

// HandleUpdateContent applies a partial patch to an item
// PATCH /api/content/{contentID} (moderator only)
//
// Omitted fields are left unchanged; the counters are never patchable
func (h *UpdateContentHandler) HandleUpdateContent(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	var req content.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	item, err := h.service.UpdateContent(r.Context(), contentID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"content": item,
	})
}
