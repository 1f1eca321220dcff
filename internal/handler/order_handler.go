package handler

import (
	"net/http"
	"strings"

	"arena-store/internal/model"
	"arena-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and order HTTP requests.
type OrderHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.CheckoutService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout requests. A repeated Idempotency-Key
// header returns the originally created order without new writes.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, email, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	order, err := h.service.Checkout(r.Context(), userID, email, &req, idempotencyKey)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests. Orders belonging to other
// users read as not found.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	orderID, ok := parseOrderID(w, r, "/api/orders/", h.logger)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status requests. Backward
// status transitions are rejected.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	param := pathParam(r, "/api/admin/orders/")
	param = strings.TrimSuffix(param, "/status")

	orderID, err := uuid.Parse(param)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid order ID format", h.logger)
		return
	}

	var req model.OrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.OrderStatus{"status": req.Status})
}

// parseOrderID extracts and parses the order ID path segment, writing a 400
// on malformed input.
func parseOrderID(w http.ResponseWriter, r *http.Request, prefix string, logger zerolog.Logger) (uuid.UUID, bool) {
	param := pathParam(r, prefix)
	if param == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", logger)
		return uuid.Nil, false
	}

	orderID, err := uuid.Parse(param)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid order ID format", logger)
		return uuid.Nil, false
	}

	return orderID, true
}
