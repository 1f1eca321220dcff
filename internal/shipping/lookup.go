package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"arena-store/internal/config"
	"arena-store/internal/model"

	"github.com/rs/zerolog"
)

// PostalLookup queries a public postal-code service to prefill address
// fields. Lookup failures are benign; callers treat them as ignorable.
type PostalLookup struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewPostalLookup creates a new postal-code lookup client.
func NewPostalLookup(cfg config.LookupConfig, logger zerolog.Logger) *PostalLookup {
	return &PostalLookup{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		logger:     logger.With().Str("component", "postal-lookup").Logger(),
	}
}

// lookupResponse mirrors the public service's payload. The service flags
// unknown postal codes with "erro": true instead of a non-2xx status.
type lookupResponse struct {
	CEP      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
	Err      bool   `json:"erro"`
}

// Lookup resolves an 8-digit postal code to street/district/city/state.
func (l *PostalLookup) Lookup(ctx context.Context, postalCode string) (*model.AddressInfo, error) {
	if !ValidPostalCode(postalCode) {
		return nil, model.ErrInvalidPostalCode
	}

	url := fmt.Sprintf("%s/%s/json/", l.baseURL, postalCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.logger.Debug().Err(err).Str("postal_code", postalCode).Msg("postal lookup failed")
		return nil, fmt.Errorf("postal lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	if body.Err {
		l.logger.Debug().Str("postal_code", postalCode).Msg("postal code not found")
		return nil, nil
	}

	return &model.AddressInfo{
		PostalCode: postalCode,
		Street:     body.Street,
		District:   body.District,
		City:       body.City,
		State:      body.State,
	}, nil
}

// ValidPostalCode reports whether s is exactly eight digit characters.
func ValidPostalCode(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
