package service

import (
	"context"
	"fmt"

	"arena-store/internal/cart"
	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the in-memory cart store.
type cartService struct {
	store       *cart.Store
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store *cart.Store, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the cart with its computed totals.
func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	return s.respond(userID), nil
}

// AddItem resolves the product and adds it to the cart. The unit price is
// captured from the catalogue at add time.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.CartItemRequest) (*model.CartResponse, error) {
	if req == nil || req.ProductID == "" {
		return nil, model.ErrProductNotFound
	}
	if req.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to resolve product")
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	if len(product.Inventory) > 0 && product.Inventory[req.Size] <= 0 {
		s.logger.Debug().
			Str("product_id", req.ProductID).
			Str("size", req.Size).
			Msg("size out of stock")
		return nil, model.ErrInvalidQuantity
	}

	item := model.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}
	if err := s.store.Add(userID, item); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Str("product_id", product.ID).
		Int("quantity", req.Quantity).
		Msg("item added to cart")

	return s.respond(userID), nil
}

// SetQuantity changes a line's quantity. Zero or less removes the line.
func (s *cartService) SetQuantity(ctx context.Context, userID uuid.UUID, productID, size string, quantity int) (*model.CartResponse, error) {
	if err := s.store.SetQuantity(userID, productID, size, quantity); err != nil {
		return nil, err
	}
	return s.respond(userID), nil
}

// RemoveItem deletes a line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID, size string) (*model.CartResponse, error) {
	if err := s.store.Remove(userID, productID, size); err != nil {
		return nil, err
	}
	return s.respond(userID), nil
}

func (s *cartService) respond(userID uuid.UUID) *model.CartResponse {
	items := s.store.Items(userID)
	totals := cart.Price(items, 0, 0)

	return &model.CartResponse{
		Items:       items,
		Subtotal:    totals.Subtotal,
		Total:       totals.Total,
		Installment: totals.Installment,
	}
}
