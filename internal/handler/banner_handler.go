package handler

import (
	"net/http"

	"arena-store/internal/model"
	"arena-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BannerHandler handles hero-carousel banner HTTP requests.
type BannerHandler struct {
	service service.BannerService
	logger  zerolog.Logger
}

// NewBannerHandler creates a new banner handler.
func NewBannerHandler(service service.BannerService, logger zerolog.Logger) *BannerHandler {
	return &BannerHandler{
		service: service,
		logger:  logger.With().Str("handler", "banner").Logger(),
	}
}

// ListActive handles GET /api/banners requests for the storefront.
func (h *BannerHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, banners)
}

// List handles GET /api/admin/banners requests.
func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, banners)
}

// Create handles POST /api/admin/banners requests.
func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.BannerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	banner, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, banner)
}

// Update handles PUT /api/admin/banners/{id} requests.
func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	bannerID, ok := h.parseBannerID(w, r)
	if !ok {
		return
	}

	var req model.BannerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	banner, err := h.service.Update(r.Context(), bannerID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, banner)
}

// Delete handles DELETE /api/admin/banners/{id} requests.
func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bannerID, ok := h.parseBannerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), bannerID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BannerHandler) parseBannerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	bannerID, err := uuid.Parse(pathParam(r, "/api/admin/banners/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid banner ID format", h.logger)
		return uuid.Nil, false
	}
	return bannerID, true
}
