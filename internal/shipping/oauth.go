package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"arena-store/internal/config"

	"github.com/rs/zerolog"
)

// TokenSet is the carrier's OAuth token response.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Error        string `json:"error,omitempty"`
}

// OAuthClient exchanges an authorization code for carrier API tokens. This
// is an operational bootstrap, not a runtime path: the resulting access
// token is copied into server configuration by hand.
type OAuthClient struct {
	httpClient *http.Client
	cfg        config.CarrierConfig
	logger     zerolog.Logger
}

// NewOAuthClient creates a new carrier OAuth client.
func NewOAuthClient(cfg config.CarrierConfig, logger zerolog.Logger) *OAuthClient {
	return &OAuthClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
		logger:     logger.With().Str("component", "shipping-oauth-client").Logger(),
	}
}

// ExchangeCode trades an authorization code for access and refresh tokens
// using the server-held client credentials.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		c.logger.Error().Msg("carrier OAuth client credentials are not configured")
		return nil, fmt.Errorf("carrier OAuth client credentials are not configured")
	}

	payload := map[string]string{
		"grant_type":    "authorization_code",
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"redirect_uri":  c.cfg.RedirectURI,
		"code":          code,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("token exchange request failed")
		return nil, fmt.Errorf("token exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	var tokens TokenSet
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	if tokens.Error != "" {
		c.logger.Warn().Str("oauth_error", tokens.Error).Msg("carrier rejected token exchange")
		return nil, fmt.Errorf("carrier rejected token exchange: %s", tokens.Error)
	}

	c.logger.Info().Msg("carrier tokens exchanged successfully")

	return &tokens, nil
}
