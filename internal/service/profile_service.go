package service

import (
	"context"
	"fmt"

	"arena-store/internal/model"
	"arena-store/internal/repository"
	"arena-store/internal/shipping"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// profileService implements ProfileService.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "profile").Logger(),
	}
}

// Get retrieves the user's profile with its addresses.
func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

// Update rewrites the profile's editable account data.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req *model.ProfileRequest) (*model.Profile, error) {
	if req == nil {
		return nil, fmt.Errorf("profile request is nil")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("profile name is required")
	}

	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Phone = req.Phone
	profile.TaxID = req.TaxID

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if err != model.ErrProfileNotFound {
			s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update profile")
		}
		return nil, err
	}

	return profile, nil
}

// AddAddress appends an address to the user's address book.
func (s *profileService) AddAddress(ctx context.Context, userID uuid.UUID, req *model.AddressRequest) (*model.Address, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}

	addr := &model.Address{
		ID:         uuid.New(),
		ProfileID:  userID,
		Label:      req.Label,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	}

	if err := s.profileRepo.AddAddress(ctx, addr); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to add address")
		return nil, fmt.Errorf("failed to add address: %w", err)
	}

	return addr, nil
}

// UpdateAddress rewrites one of the user's addresses.
func (s *profileService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, req *model.AddressRequest) error {
	if err := validateAddressRequest(req); err != nil {
		return err
	}

	addr := &model.Address{
		ID:         addressID,
		ProfileID:  userID,
		Label:      req.Label,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	}

	return s.profileRepo.UpdateAddress(ctx, addr)
}

// DeleteAddress removes one of the user's addresses.
func (s *profileService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return s.profileRepo.DeleteAddress(ctx, userID, addressID)
}

// SetDefaultAddress marks one address as the default.
func (s *profileService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return s.profileRepo.SetDefaultAddress(ctx, userID, addressID)
}

func validateAddressRequest(req *model.AddressRequest) error {
	if req == nil {
		return fmt.Errorf("address request is nil")
	}
	if req.Street == "" || req.City == "" || req.State == "" {
		return fmt.Errorf("street, city and state are required")
	}
	if !shipping.ValidPostalCode(req.PostalCode) {
		return model.ErrInvalidPostalCode
	}
	return nil
}
