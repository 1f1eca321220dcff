package service

import (
	"context"
	"fmt"

	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves products matching the filter, with pagination. Filter
// predicates are applied to the fetched page.
func (s *catalogService) List(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	filtered := model.FilterProducts(products, filter)

	s.logger.Debug().
		Int("fetched", len(products)).
		Int("matched", len(filtered)).
		Msg("listed products")

	return filtered, nil
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a product to the catalogue.
func (s *catalogService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product := productFromRequest(uuid.NewString(), req)

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// Update rewrites an existing product.
func (s *catalogService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product := productFromRequest(id, req)

	if err := s.productRepo.Update(ctx, product); err != nil {
		if err != model.ErrProductNotFound {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		}
		return nil, err
	}

	return product, nil
}

// Delete removes a product from the catalogue.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err != model.ErrProductNotFound {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		}
		return err
	}

	return nil
}

func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return fmt.Errorf("product request is nil")
	}
	if req.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if req.Category == "" {
		return fmt.Errorf("product category is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	return nil
}

func productFromRequest(id string, req *model.ProductRequest) *model.Product {
	return &model.Product{
		ID:            id,
		Name:          req.Name,
		Brand:         req.Brand,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Images:        req.Images,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		IsNew:         req.IsNew,
		Inventory:     req.Inventory,
		Dimensions:    req.Dimensions,
	}
}
