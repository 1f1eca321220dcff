package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a profile. The admin surface is gated on an exact
// match against RoleAdmin.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Profile represents the customer-facing account record. Its ID is shared
// with the auth user.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	TaxID     string    `json:"taxId" db:"tax_id"`
	Role      string    `json:"role" db:"role"`
	Addresses []Address `json:"addresses,omitempty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Address represents an entry in a profile's address book. At most one
// address per profile may be the default.
type Address struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ProfileID  uuid.UUID `json:"-" db:"profile_id"`
	Label      string    `json:"label" db:"label"`
	Street     string    `json:"street" db:"street"`
	Number     string    `json:"number" db:"number"`
	District   string    `json:"district" db:"district"`
	City       string    `json:"city" db:"city"`
	State      string    `json:"state" db:"state"`
	PostalCode string    `json:"postalCode" db:"postal_code"`
	IsDefault  bool      `json:"isDefault" db:"is_default"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ProfileRequest represents the payload for updating account data.
type ProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	TaxID string `json:"taxId"`
}

// AddressRequest represents the payload for creating or updating an address.
type AddressRequest struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Client summarises a profile for the admin client list.
type Client struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Email       string     `json:"email" db:"email"`
	OrdersCount int        `json:"ordersCount" db:"orders_count"`
	TotalSpent  float64    `json:"totalSpent" db:"total_spent"`
	LastOrderAt *time.Time `json:"lastOrderAt,omitempty" db:"last_order_at"`
}
