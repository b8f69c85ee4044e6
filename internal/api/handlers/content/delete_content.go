package content

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/content"
)

// DeleteContentHandler handles content removal
type DeleteContentHandler struct {
	service content.Service
}

// NewDeleteContentHandler creates a new delete content handler
func NewDeleteContentHandler(service content.Service) *DeleteContentHandler {
	return &DeleteContentHandler{service: service}
}

// HandleDeleteContent removes an item along with its engagement facts and
// comments
// DELETE /api/content/{contentID} (moderator only)
func (h *DeleteContentHandler) HandleDeleteContent(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	if err := h.service.DeleteContent(r.Context(), contentID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Content removed",
	})
}
