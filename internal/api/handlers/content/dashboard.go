package content

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/content"
)

// DashboardHandler handles the management-side overview
type DashboardHandler struct {
	service content.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service content.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// HandleDashboard aggregates engagement totals and the latest items
// GET /api/content/dashboard (moderator only)
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, dashboard)
}
