package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"arena-store/internal/config"
	"arena-store/internal/model"

	"github.com/rs/zerolog"
)

// UpstreamError carries a carrier error response so handlers can forward
// the original status and body to the caller.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("carrier returned status %d", e.StatusCode)
}

// RateClient calls the carrier's shipment rate-calculation endpoint. Its
// only added value over calling the carrier directly is keeping the bearer
// credential on the server.
type RateClient struct {
	httpClient *http.Client
	cfg        config.CarrierConfig
	logger     zerolog.Logger
}

// NewRateClient creates a new carrier rate client.
func NewRateClient(cfg config.CarrierConfig, logger zerolog.Logger) *RateClient {
	return &RateClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
		logger:     logger.With().Str("component", "shipping-rate-client").Logger(),
	}
}

// CalculateRates forwards a quote request to the carrier and returns its
// service options. The origin postal code defaults from configuration when
// the request omits it. If the bearer token is unset the call fails fast
// with a configuration error before any network traffic; upstream errors
// are returned as *UpstreamError with the carrier's status and body.
func (c *RateClient) CalculateRates(ctx context.Context, req *model.QuoteRequest) ([]model.Quote, error) {
	if c.cfg.Token == "" {
		c.logger.Error().Msg("carrier token is not configured")
		return nil, model.ErrShippingConfig
	}

	if req.From == nil {
		req.From = &model.QuoteEndpoint{PostalCode: c.cfg.OriginPostalCode}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quote request: %w", err)
	}

	url := c.cfg.BaseURL + "/me/shipment/calculate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create carrier request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)

	c.logger.Debug().
		Str("destination", req.To.PostalCode).
		Int("package_count", len(req.Products)).
		Msg("requesting carrier rates")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("carrier request failed")
		return nil, fmt.Errorf("carrier request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read carrier response: %w", err)
	}

	// Forward upstream errors verbatim, no retry.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("carrier returned error status")
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var quotes []model.Quote
	if err := json.Unmarshal(respBody, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode carrier response: %w", err)
	}

	c.logger.Debug().
		Int("quote_count", len(quotes)).
		Msg("carrier rates received")

	return quotes, nil
}

// FilterUsable returns only the quotes that can be offered for selection:
// entries with no error flag and a usable price.
func FilterUsable(quotes []model.Quote) []model.Quote {
	usable := make([]model.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Usable() {
			usable = append(usable, q)
		}
	}
	return usable
}
