package handler

import (
	"net/http"

	"arena-store/internal/coupon"
	"arena-store/internal/model"
	"arena-store/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests. Every route requires an
// authenticated session; the cart is keyed by the session's user ID.
type CartHandler struct {
	service   service.CartService
	validator coupon.Validator
	logger    zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, validator coupon.Validator, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	cart, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	cart, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// UpdateItem handles PUT /api/cart/items/{productID} requests. The size
// comes from the size query parameter; a quantity of zero or less removes
// the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	productID := pathParam(r, "/api/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}
	size := r.URL.Query().Get("size")

	var req model.CartQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	cart, err := h.service.SetQuantity(r.Context(), userID, productID, size, req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart/items/{productID} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	productID := pathParam(r, "/api/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}
	size := r.URL.Query().Get("size")

	cart, err := h.service.RemoveItem(r.Context(), userID, productID, size)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// couponRequest represents the payload for validating a coupon code.
type couponRequest struct {
	Code string `json:"code"`
}

// couponResponse reports a valid coupon and its discount percentage.
type couponResponse struct {
	Code            string  `json:"code"`
	Valid           bool    `json:"valid"`
	DiscountPercent float64 `json:"discountPercent"`
}

// ValidateCoupon handles POST /api/cart/coupon requests.
func (h *CartHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := currentUser(w, r, h.logger); !ok {
		return
	}

	var req couponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "coupon code is required", h.logger)
		return
	}

	if err := h.validator.Validate(r.Context(), req.Code); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, couponResponse{
		Code:            req.Code,
		Valid:           true,
		DiscountPercent: 10,
	})
}
