package content

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/content"
)

// GetContentHandler handles single-item reads
type GetContentHandler struct {
	service content.Service
}

// NewGetContentHandler creates a new get content handler
func NewGetContentHandler(service content.Service) *GetContentHandler {
	return &GetContentHandler{service: service}
}

// HandleGetContent returns one item hydrated with the viewer's like state
// and the comment thread
// GET /api/content/{contentID}
func (h *GetContentHandler) HandleGetContent(w http.ResponseWriter, r *http.Request) {
	contentID, ok := handlers.URLParamInt64(w, r, "contentID")
	if !ok {
		return
	}

	view, err := h.service.GetContent(r.Context(), contentID, middleware.GetActorID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"content": view,
	})
}
