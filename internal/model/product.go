package model

import (
	"strings"
	"time"
)

// Dimensions holds the shipping dimensions of a boxed product.
// Weight is in kilograms, the remaining fields in centimetres.
type Dimensions struct {
	Weight float64 `json:"weight" db:"weight"`
	Height float64 `json:"height" db:"height"`
	Width  float64 `json:"width" db:"width"`
	Length float64 `json:"length" db:"length"`
}

// Product represents a jersey in the catalogue.
type Product struct {
	ID            string         `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Brand         string         `json:"brand" db:"brand"`
	Price         float64        `json:"price" db:"price"`
	OriginalPrice *float64       `json:"originalPrice,omitempty" db:"original_price"`
	ImageURL      string         `json:"imageUrl" db:"image_url"`
	Images        []string       `json:"images,omitempty" db:"images"`
	Category      string         `json:"category" db:"category"`
	Subcategory   *string        `json:"subcategory,omitempty" db:"subcategory"`
	IsNew         bool           `json:"isNew" db:"is_new"`
	Inventory     map[string]int `json:"inventory,omitempty" db:"inventory"`
	Dimensions    Dimensions     `json:"dimensions"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

// ProductFilter holds the optional catalogue filter predicates.
// Absent predicates match every product; active predicates combine with
// logical AND.
type ProductFilter struct {
	Category string
	Team     string
	MaxPrice *float64
}

// Matches reports whether the product satisfies every active predicate.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" {
		inCategory := containsFold(p.Category, f.Category)
		if !inCategory && p.Subcategory != nil {
			inCategory = containsFold(*p.Subcategory, f.Category)
		}
		if !inCategory {
			return false
		}
	}

	if f.Team != "" && !containsFold(p.Name, f.Team) && !containsFold(p.Brand, f.Team) {
		return false
	}

	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	return true
}

// FilterProducts returns the subset of products satisfying all active
// predicates, preserving input order.
func FilterProducts(products []Product, filter ProductFilter) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	Name          string         `json:"name"`
	Brand         string         `json:"brand"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"originalPrice,omitempty"`
	ImageURL      string         `json:"imageUrl"`
	Images        []string       `json:"images,omitempty"`
	Category      string         `json:"category"`
	Subcategory   *string        `json:"subcategory,omitempty"`
	IsNew         bool           `json:"isNew"`
	Inventory     map[string]int `json:"inventory,omitempty"`
	Dimensions    Dimensions     `json:"dimensions"`
}
