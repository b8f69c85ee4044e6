package content

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/content"
)

// CreateContentHandler handles content publication
type CreateContentHandler struct {
	service content.Service
}

// NewCreateContentHandler creates a new create content handler
func NewCreateContentHandler(service content.Service) *CreateContentHandler {
	return &CreateContentHandler{service: service}
}

// HandleCreateContent publishes a new content item
// POST /api/content (moderator only)
//
// Request body: { "title": "...", "body": "...", "author": "...", "category": "..." }
func (h *CreateContentHandler) HandleCreateContent(w http.ResponseWriter, r *http.Request) {
	var req content.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	item, err := h.service.CreateContent(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"content": item,
	})
}
