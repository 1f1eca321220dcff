package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arena-store/internal/config"
	"arena-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carrierConfig(baseURL, token string) config.CarrierConfig {
	return config.CarrierConfig{
		BaseURL:          baseURL,
		Token:            token,
		UserAgent:        "Test Agent",
		OriginPostalCode: "01310100",
	}
}

func TestRateClient_CalculateRates_Success(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/me/shipment/calculate", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.QuoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// Origin must be defaulted from configuration when omitted.
		require.NotNil(t, req.From)
		assert.Equal(t, "01310100", req.From.PostalCode)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "PAC", "price": "25.90", "delivery_time": 8},
			{"id": 2, "name": "SEDEX", "price": "35.50", "delivery_time": 3}
		]`))
	}))
	defer server.Close()

	client := NewRateClient(carrierConfig(server.URL, "test-token"), logger)

	quotes, err := client.CalculateRates(context.Background(), &model.QuoteRequest{
		To: model.QuoteEndpoint{PostalCode: "04551000"},
		Products: []model.QuotePackage{
			{ID: "P001", Width: 30, Height: 5, Length: 40, Weight: 0.3, InsuranceValue: 349.90, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "PAC", quotes[0].Name)

	price, ok := quotes[0].PriceValue()
	assert.True(t, ok)
	assert.InDelta(t, 25.90, price, 1e-9)
}

func TestRateClient_CalculateRates_MissingToken(t *testing.T) {
	logger := zerolog.Nop()

	// No server: the call must fail before any network traffic.
	client := NewRateClient(carrierConfig("http://127.0.0.1:0", ""), logger)

	quotes, err := client.CalculateRates(context.Background(), &model.QuoteRequest{
		To: model.QuoteEndpoint{PostalCode: "04551000"},
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrShippingConfig, err)
	assert.Nil(t, quotes)
}

func TestRateClient_CalculateRates_UpstreamError(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthenticated."}`))
	}))
	defer server.Close()

	client := NewRateClient(carrierConfig(server.URL, "stale-token"), logger)

	_, err := client.CalculateRates(context.Background(), &model.QuoteRequest{
		To: model.QuoteEndpoint{PostalCode: "04551000"},
	})

	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Contains(t, string(upstream.Body), "Unauthenticated")
}

func TestRateClient_CalculateRates_KeepsExplicitOrigin(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.QuoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.From)
		assert.Equal(t, "99999999", req.From.PostalCode)

		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewRateClient(carrierConfig(server.URL, "test-token"), logger)

	_, err := client.CalculateRates(context.Background(), &model.QuoteRequest{
		From: &model.QuoteEndpoint{PostalCode: "99999999"},
		To:   model.QuoteEndpoint{PostalCode: "04551000"},
	})
	require.NoError(t, err)
}

func TestFilterUsable(t *testing.T) {
	quotes := []model.Quote{
		{ID: 1, Name: "PAC", Price: "25.90"},
		{ID: 2, Name: "SEDEX", Price: "35.50"},
		{ID: 3, Name: "Mini", Error: "service unavailable for this route"},
		{ID: 4, Name: "Economic"},                  // no price at all
		{ID: 5, Name: "Zero", Price: "0.00"},       // unusable price
		{ID: 6, Name: "Junk", Price: "not-a-price"},
	}

	usable := FilterUsable(quotes)

	require.Len(t, usable, 2)
	assert.Equal(t, "PAC", usable[0].Name)
	assert.Equal(t, "SEDEX", usable[1].Name)
}

func TestFilterUsable_AllErrored(t *testing.T) {
	quotes := []model.Quote{
		{ID: 1, Error: "no service"},
		{ID: 2, Error: "no service"},
	}

	assert.Empty(t, FilterUsable(quotes))
}

func TestValidPostalCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{name: "Valid 8 digits", code: "04551000", expected: true},
		{name: "Too short", code: "0455100", expected: false},
		{name: "Too long", code: "045510001", expected: false},
		{name: "Contains dash", code: "04551-00", expected: false},
		{name: "Contains letters", code: "abcd1234", expected: false},
		{name: "Empty", code: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidPostalCode(tt.code))
		})
	}
}
