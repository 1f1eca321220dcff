package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusRank orders the forward progression of an order. Cancellation is
// terminal and reachable from any non-delivered state.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a forward
// transition. Backward moves such as delivered -> processing are rejected.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s == next {
		return false
	}
	if s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return s != OrderStatusDelivered
	}
	return statusRank[next] > statusRank[s]
}

// Order represents a customer order.
type Order struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      uuid.UUID   `json:"userId" db:"user_id"`
	Status      OrderStatus `json:"status" db:"status"`
	TotalAmount float64     `json:"totalAmount" db:"total_amount"`
	CouponCode  *string     `json:"couponCode,omitempty" db:"coupon_code"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order. PriceAtTime is snapshotted
// when the order is placed and never recomputed from the live product price.
type OrderItem struct {
	ID          uuid.UUID `json:"-" db:"id"`
	OrderID     uuid.UUID `json:"-" db:"order_id"`
	ProductID   string    `json:"productId" db:"product_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	PriceAtTime float64   `json:"priceAtTime" db:"price_at_time"`
	Size        string    `json:"size" db:"size"`
}

// CheckoutRequest represents the payload for finalising the current cart.
type CheckoutRequest struct {
	CouponCode *string        `json:"couponCode,omitempty"`
	Shipping   *SelectedQuote `json:"shipping,omitempty"`
}

// SelectedQuote is the shipping service the customer picked from a prior
// rate-quote call.
type SelectedQuote struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	ID          uuid.UUID   `json:"id"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []OrderItem `json:"items"`
	Products    []Product   `json:"products,omitempty"`
}

// OrderStatusRequest represents the payload for an admin status update.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
