package handler

import (
	"net/http"
	"strings"

	"arena-store/internal/model"
	"arena-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProfileHandler handles account and address-book HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profile requests.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update handles PUT /api/profile requests.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ListAddresses handles GET /api/profile/addresses requests.
func (h *ProfileHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile.Addresses)
}

// AddAddress handles POST /api/profile/addresses requests.
func (h *ProfileHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.AddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	address, err := h.service.AddAddress(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, address)
}

// UpdateAddress handles PUT /api/profile/addresses/{id} requests and
// PUT /api/profile/addresses/{id}/default requests.
func (h *ProfileHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	param := pathParam(r, "/api/profile/addresses/")
	setDefault := strings.HasSuffix(param, "/default")
	param = strings.TrimSuffix(param, "/default")

	addressID, ok := h.parseAddressID(w, param)
	if !ok {
		return
	}

	if setDefault {
		if err := h.service.SetDefaultAddress(r.Context(), userID, addressID); err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req model.AddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateAddress(r.Context(), userID, addressID, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAddress handles DELETE /api/profile/addresses/{id} requests.
func (h *ProfileHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	addressID, ok := h.parseAddressID(w, pathParam(r, "/api/profile/addresses/"))
	if !ok {
		return
	}

	if err := h.service.DeleteAddress(r.Context(), userID, addressID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) parseAddressID(w http.ResponseWriter, param string) (uuid.UUID, bool) {
	addressID, err := uuid.Parse(param)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid address ID format", h.logger)
		return uuid.Nil, false
	}
	return addressID, true
}
