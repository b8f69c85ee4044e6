package content

import (
	"net/http"
	"strconv"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/content"
)

// ListContentHandler handles the paginated newest-first listing
type ListContentHandler struct {
	service content.Service
}

// NewListContentHandler creates a new list content handler
func NewListContentHandler(service content.Service) *ListContentHandler {
	return &ListContentHandler{service: service}
}

// HandleListContent returns one page of items
// GET /api/content?page=N&limit=M
func (h *ListContentHandler) HandleListContent(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.ListContent(r.Context(), page, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
