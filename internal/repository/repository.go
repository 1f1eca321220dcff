package repository

import (
	"context"

	"arena-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// ValidateProductsExist checks if all provided product IDs exist in the database.
	// Returns error if any product ID does not exist.
	ValidateProductsExist(ctx context.Context, ids []string) error

	// Create inserts a new product.
	Create(ctx context.Context, p *model.Product) error

	// Update rewrites an existing product.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListItems retrieves the items of multiple orders.
	ListItems(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error)

	// UpdateStatus sets an order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	// GetStatus retrieves the current status of an order.
	GetStatus(ctx context.Context, id uuid.UUID) (model.OrderStatus, error)
}

// ProfileRepository defines the interface for profile and address book
// data access operations.
type ProfileRepository interface {
	// GetByID retrieves a profile with its addresses.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)

	// GetByEmail retrieves a profile by email with its addresses.
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)

	// Update rewrites a profile's editable account data.
	Update(ctx context.Context, p *model.Profile) error

	// AddAddress inserts an address. The first address of a profile
	// becomes the default.
	AddAddress(ctx context.Context, addr *model.Address) error

	// UpdateAddress rewrites an address's fields, leaving the default
	// flag untouched.
	UpdateAddress(ctx context.Context, addr *model.Address) error

	// DeleteAddress removes an address. Deleting the default promotes the
	// oldest remaining address.
	DeleteAddress(ctx context.Context, profileID, addressID uuid.UUID) error

	// SetDefaultAddress marks one address as default and clears the flag
	// on every other address of the profile.
	SetDefaultAddress(ctx context.Context, profileID, addressID uuid.UUID) error

	// ListClients summarises all profiles with their order statistics.
	ListClients(ctx context.Context) ([]model.Client, error)
}

// ActivityRepository defines the interface for the append-only admin
// activity feed.
type ActivityRepository interface {
	// CreateTx inserts an activity entry within the provided transaction.
	CreateTx(ctx context.Context, tx pgx.Tx, activity *model.Activity) error

	// List retrieves the newest activity entries.
	List(ctx context.Context, limit int) ([]model.Activity, error)
}

// BannerRepository defines the interface for hero-carousel banner
// data access operations.
type BannerRepository interface {
	// ListActive retrieves active banners ordered by priority.
	ListActive(ctx context.Context) ([]model.Banner, error)

	// List retrieves all banners ordered by priority.
	List(ctx context.Context) ([]model.Banner, error)

	// Create inserts a new banner.
	Create(ctx context.Context, b *model.Banner) error

	// Update rewrites an existing banner.
	Update(ctx context.Context, b *model.Banner) error

	// Delete removes a banner by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the interface for credential records.
type UserRepository interface {
	// Create inserts a user and its profile row in one transaction.
	Create(ctx context.Context, user *model.User, profile *model.Profile) error

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
