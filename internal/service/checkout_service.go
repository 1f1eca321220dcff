package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arena-store/internal/cart"
	"arena-store/internal/coupon"
	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
	store        *cart.Store
	validator    coupon.Validator
	logger       zerolog.Logger

	// seenKeys maps user-scoped idempotency keys to the order they
	// produced. Keys live for the process lifetime.
	mu       sync.Mutex
	seenKeys map[string]uuid.UUID
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
	store *cart.Store,
	validator coupon.Validator,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		store:        store,
		validator:    validator,
		logger:       logger.With().Str("service", "checkout").Logger(),
		seenKeys:     make(map[string]uuid.UUID),
	}
}

// Checkout converts the user's cart into a persisted order. The order, its
// items, and the admin activity entry commit atomically; a failure in any
// of them leaves no partial order behind.
func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, email string, req *model.CheckoutRequest, idempotencyKey string) (*model.OrderResponse, error) {
	if req == nil {
		req = &model.CheckoutRequest{}
	}

	if idempotencyKey != "" {
		if orderID, seen := s.replayedOrder(userID, idempotencyKey); seen {
			s.logger.Info().
				Str("user_id", userID.String()).
				Str("order_id", orderID.String()).
				Msg("idempotency key replayed, returning existing order")
			return s.GetOrder(ctx, userID, orderID)
		}
	}

	items := s.store.Items(userID)
	if len(items) == 0 {
		return nil, model.ErrCartEmpty
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	if err := s.productRepo.ValidateProductsExist(ctx, productIDs); err != nil {
		s.logger.Warn().
			Int("product_count", len(productIDs)).
			Err(err).
			Msg("product validation failed")
		return nil, err
	}

	subtotal := cart.Subtotal(items)

	var discount float64
	if req.CouponCode != nil && *req.CouponCode != "" {
		var err error
		discount, err = s.validator.Discount(ctx, *req.CouponCode, subtotal)
		if err != nil {
			s.logger.Warn().
				Str("coupon_code", *req.CouponCode).
				Err(err).
				Msg("invalid coupon code")
			return nil, err
		}
	}

	var shipping float64
	if req.Shipping != nil {
		shipping = req.Shipping.Price
	}

	totals := cart.Price(items, discount, shipping)

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure the transaction is rolled back on any failure before commit.
	// Failures after commit must not trigger a rollback.
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      model.OrderStatusPending,
		TotalAmount: totals.Total,
		CouponCode:  req.CouponCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: item.UnitPrice,
			Size:        item.Size,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	activity := &model.Activity{
		ID:         uuid.New(),
		Icon:       "shopping-bag",
		Title:      "Novo pedido",
		Subtitle:   email,
		Color:      "green",
		ValueLabel: fmt.Sprintf("R$ %.2f", totals.Total),
	}
	if err = s.activityRepo.CreateTx(ctx, tx, activity); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to record order activity")
		return nil, fmt.Errorf("failed to record order activity: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	committed = true

	s.store.Clear(userID)
	if idempotencyKey != "" {
		s.rememberOrder(userID, idempotencyKey, order.ID)
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to retrieve product details")
		return nil, fmt.Errorf("failed to retrieve product details: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID.String()).
		Int("item_count", len(orderItems)).
		Float64("total", totals.Total).
		Msg("order created successfully")

	return &model.OrderResponse{
		ID:          order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       orderItems,
		Products:    products,
	}, nil
}

// GetOrder retrieves one of the user's orders with its items. Orders
// belonging to other users are reported as not found.
func (s *checkoutService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil || order.UserID != userID {
		s.logger.Debug().Str("order_id", orderID.String()).Msg("order not found for user")
		return nil, model.ErrOrderNotFound
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to retrieve product details")
		return nil, fmt.Errorf("failed to retrieve product details: %w", err)
	}

	return &model.OrderResponse{
		ID:          order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
		Products:    products,
	}, nil
}

// ListOrders retrieves the user's orders, newest first.
func (s *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orderIDs := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	items, err := s.orderRepo.ListItems(ctx, orderIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list order items")
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]model.OrderItem)
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	responses := make([]model.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = model.OrderResponse{
			ID:          o.ID,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
			Items:       itemsByOrder[o.ID],
		}
	}

	return responses, nil
}

// UpdateStatus moves an order to a new status. Only forward transitions
// are allowed; delivered and cancelled orders are terminal.
func (s *checkoutService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error {
	current, err := s.orderRepo.GetStatus(ctx, orderID)
	if err != nil {
		return err
	}

	if !current.CanTransitionTo(status) {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("from", string(current)).
			Str("to", string(status)).
			Msg("rejected status transition")
		return model.ErrInvalidStatus
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

func (s *checkoutService) replayedOrder(userID uuid.UUID, key string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orderID, seen := s.seenKeys[userID.String()+":"+key]
	return orderID, seen
}

func (s *checkoutService) rememberOrder(userID uuid.UUID, key string, orderID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seenKeys[userID.String()+":"+key] = orderID
}
