package service

import (
	"context"
	"fmt"
	"strings"

	"arena-store/internal/auth"
	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokens      *auth.TokenService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tokens *auth.TokenService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a credential record and profile, then signs in. The
// user and profile share one ID so the admin gate can join them.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("register request is nil")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, model.ErrBadCredentials
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	user := &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
	}
	profile := &model.Profile{
		ID:    id,
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Role:  model.RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, user, profile); err != nil {
		if err != model.ErrEmailTaken {
			s.logger.Error().Err(err).Msg("failed to register user")
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", id.String()).Msg("user registered")

	return s.issueTokens(user, profile.Role)
}

// Login verifies credentials and issues session tokens.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if req == nil {
		return nil, model.ErrBadCredentials
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		s.logger.Debug().Str("email", email).Msg("login rejected")
		return nil, model.ErrBadCredentials
	}

	role := model.RoleCustomer
	profile, err := s.profileRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		role = profile.Role
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return s.issueTokens(user, role)
}

// Refresh rotates an access token from a valid refresh token.
func (s *authService) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenResponse, error) {
	if req == nil || req.RefreshToken == "" {
		return nil, auth.ErrInvalidToken
	}

	userID, err := s.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, auth.ErrInvalidToken
	}

	role := model.RoleCustomer
	profile, err := s.profileRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		role = profile.Role
	}

	access, expiresAt, err := s.tokens.IssueAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken:  access,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *authService) issueTokens(user *model.User, role string) (*model.TokenResponse, error) {
	access, expiresAt, err := s.tokens.IssueAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, err
	}

	refresh, _, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}
