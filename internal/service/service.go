package service

import (
	"context"

	"arena-store/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for the jersey catalogue.
type CatalogService interface {
	// List retrieves products matching the filter, with pagination.
	List(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update rewrites an existing product.
	Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error
}

// CartService defines operations on a user's transient cart.
type CartService interface {
	// Get returns the cart with its computed totals.
	Get(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)

	// AddItem resolves the product and adds it to the cart. Adding the
	// same product and size again increments the existing line.
	AddItem(ctx context.Context, userID uuid.UUID, req *model.CartItemRequest) (*model.CartResponse, error)

	// SetQuantity changes a line's quantity. Zero or less removes the line.
	SetQuantity(ctx context.Context, userID uuid.UUID, productID, size string, quantity int) (*model.CartResponse, error)

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, productID, size string) (*model.CartResponse, error)
}

// CheckoutService defines order placement and retrieval.
type CheckoutService interface {
	// Checkout converts the user's cart into a persisted order. A repeated
	// idempotency key returns the already-created order.
	Checkout(ctx context.Context, userID uuid.UUID, email string, req *model.CheckoutRequest, idempotencyKey string) (*model.OrderResponse, error)

	// GetOrder retrieves one of the user's orders with its items.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.OrderResponse, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error)

	// UpdateStatus moves an order to a new status. Backward transitions
	// are rejected.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error
}

// AuthService defines account registration and session issuance.
type AuthService interface {
	// Register creates a credential record and profile, then signs in.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error)

	// Login verifies credentials and issues session tokens.
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)

	// Refresh rotates an access token from a valid refresh token.
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenResponse, error)
}

// ProfileService defines account data and address book operations.
type ProfileService interface {
	// Get retrieves the user's profile with its addresses.
	Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// Update rewrites the profile's editable account data.
	Update(ctx context.Context, userID uuid.UUID, req *model.ProfileRequest) (*model.Profile, error)

	// AddAddress appends an address to the user's address book.
	AddAddress(ctx context.Context, userID uuid.UUID, req *model.AddressRequest) (*model.Address, error)

	// UpdateAddress rewrites one of the user's addresses.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, req *model.AddressRequest) error

	// DeleteAddress removes one of the user's addresses.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// SetDefaultAddress marks one address as the default.
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error
}

// BannerService defines hero-carousel banner operations.
type BannerService interface {
	// ListActive retrieves the banners shown on the storefront.
	ListActive(ctx context.Context) ([]model.Banner, error)

	// List retrieves all banners for the admin surface.
	List(ctx context.Context) ([]model.Banner, error)

	// Create adds a banner.
	Create(ctx context.Context, req *model.BannerRequest) (*model.Banner, error)

	// Update rewrites an existing banner.
	Update(ctx context.Context, id uuid.UUID, req *model.BannerRequest) (*model.Banner, error)

	// Delete removes a banner.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminService defines the back-office dashboard reads.
type AdminService interface {
	// ListClients summarises all customers with their order statistics.
	ListClients(ctx context.Context) ([]model.Client, error)

	// ListActivities retrieves the newest activity feed entries.
	ListActivities(ctx context.Context, limit int) ([]model.Activity, error)
}
