package handler

import (
	"net/http"

	"arena-store/internal/model"
	"arena-store/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles back-office dashboard HTTP requests. Routes are
// gated by the RequireAdmin middleware.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// ListClients handles GET /api/admin/clients requests.
func (h *AdminHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, clients)
}

// ListActivities handles GET /api/admin/activities requests, newest first.
func (h *AdminHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid limit parameter", h.logger)
		return
	}

	activities, err := h.service.ListActivities(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}
