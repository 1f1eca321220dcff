package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"arena-store/internal/middleware"
	"arena-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Int("status", status).Msg(message)
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service-layer error to an HTTP response. Domain
// errors carry their own stable code; everything else is an internal error.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	// Plain validation errors from the service layer name the missing field.
	if msg := err.Error(); strings.Contains(msg, "required") || strings.Contains(msg, "is nil") {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, msg, logger)
		return
	}

	logger.Error().Err(err).Msg("unhandled service error")
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// statusForCode maps domain error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound,
		model.ErrCodeProfileNotFound, model.ErrCodeAddressNotFound,
		model.ErrCodeBannerNotFound:
		return http.StatusNotFound
	case model.ErrCodeEmailTaken:
		return http.StatusConflict
	case model.ErrCodeInvalidStatus:
		return http.StatusUnprocessableEntity
	case model.ErrCodeBadCredentials, model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeShippingConfig:
		return http.StatusServiceUnavailable
	case model.ErrCodeInvalidCoupon, model.ErrCodeInvalidCouponLength,
		model.ErrCodeCartEmpty, model.ErrCodeInvalidQuantity,
		model.ErrCodeInvalidPostalCode, model.ErrCodeInvalidJSON,
		model.ErrCodeMissingField:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// currentUser returns the authenticated user's ID and email. Returns false
// after writing a 401 when the request carries no valid claims.
func currentUser(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (uuid.UUID, string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", logger)
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "invalid session", logger)
		return uuid.Nil, "", false
	}

	return userID, claims.Email, true
}

// pathParam returns the path segment following prefix, with any trailing
// slash removed. Returns "" when the path has no such segment.
func pathParam(r *http.Request, prefix string) string {
	path := r.URL.Path
	if len(path) <= len(prefix) {
		return ""
	}
	param := path[len(prefix):]
	if len(param) > 0 && param[len(param)-1] == '/' {
		param = param[:len(param)-1]
	}
	return param
}
