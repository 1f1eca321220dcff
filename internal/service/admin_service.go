package service

import (
	"context"
	"fmt"

	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/rs/zerolog"
)

const defaultActivityLimit = 20

// adminService implements AdminService.
type adminService struct {
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	logger       zerolog.Logger
}

// NewAdminService creates a new admin dashboard service.
func NewAdminService(
	profileRepo repository.ProfileRepository,
	activityRepo repository.ActivityRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		logger:       logger.With().Str("service", "admin").Logger(),
	}
}

// ListClients summarises all customers with their order statistics.
func (s *adminService) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.profileRepo.ListClients(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// ListActivities retrieves the newest activity feed entries.
func (s *adminService) ListActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultActivityLimit
	}

	activities, err := s.activityRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list activities")
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
