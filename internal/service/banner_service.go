package service

import (
	"context"
	"fmt"

	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// bannerService implements BannerService.
type bannerService struct {
	bannerRepo repository.BannerRepository
	logger     zerolog.Logger
}

// NewBannerService creates a new banner service.
func NewBannerService(bannerRepo repository.BannerRepository, logger zerolog.Logger) BannerService {
	return &bannerService{
		bannerRepo: bannerRepo,
		logger:     logger.With().Str("service", "banner").Logger(),
	}
}

// ListActive retrieves the banners shown on the storefront.
func (s *bannerService) ListActive(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list active banners")
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// List retrieves all banners for the admin surface.
func (s *bannerService) List(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list banners")
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// Create adds a banner.
func (s *bannerService) Create(ctx context.Context, req *model.BannerRequest) (*model.Banner, error) {
	if err := validateBannerRequest(req); err != nil {
		return nil, err
	}

	banner := bannerFromRequest(uuid.New(), req)
	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("failed to create banner")
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return banner, nil
}

// Update rewrites an existing banner.
func (s *bannerService) Update(ctx context.Context, id uuid.UUID, req *model.BannerRequest) (*model.Banner, error) {
	if err := validateBannerRequest(req); err != nil {
		return nil, err
	}

	banner := bannerFromRequest(id, req)
	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		if err != model.ErrBannerNotFound {
			s.logger.Error().Err(err).Str("banner_id", id.String()).Msg("failed to update banner")
		}
		return nil, err
	}

	return banner, nil
}

// Delete removes a banner.
func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		if err != model.ErrBannerNotFound {
			s.logger.Error().Err(err).Str("banner_id", id.String()).Msg("failed to delete banner")
		}
		return err
	}
	return nil
}

func validateBannerRequest(req *model.BannerRequest) error {
	if req == nil {
		return fmt.Errorf("banner request is nil")
	}
	if req.Title == "" {
		return fmt.Errorf("banner title is required")
	}
	return nil
}

func bannerFromRequest(id uuid.UUID, req *model.BannerRequest) *model.Banner {
	displayDuration := req.DisplayDuration
	if displayDuration <= 0 {
		displayDuration = 5000
	}

	return &model.Banner{
		ID:                  id,
		Tag:                 req.Tag,
		Title:               req.Title,
		Subtitle:            req.Subtitle,
		ImageURL:            req.ImageURL,
		ButtonPrimaryText:   req.ButtonPrimaryText,
		ButtonPrimaryLink:   req.ButtonPrimaryLink,
		ButtonSecondaryText: req.ButtonSecondaryText,
		ButtonSecondaryLink: req.ButtonSecondaryLink,
		Priority:            req.Priority,
		Active:              req.Active,
		DisplayDuration:     displayDuration,
	}
}
