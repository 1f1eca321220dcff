package handler

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"arena-store/internal/model"
	"arena-store/internal/service"
	"arena-store/internal/shipping"

	"github.com/rs/zerolog"
)

// ShippingHandler handles shipping-quote, carrier OAuth and postal-lookup
// HTTP requests.
type ShippingHandler struct {
	rates   *shipping.RateClient
	oauth   *shipping.OAuthClient
	lookup  *shipping.PostalLookup
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewShippingHandler creates a new shipping handler.
func NewShippingHandler(
	rates *shipping.RateClient,
	oauth *shipping.OAuthClient,
	lookup *shipping.PostalLookup,
	catalog service.CatalogService,
	logger zerolog.Logger,
) *ShippingHandler {
	return &ShippingHandler{
		rates:   rates,
		oauth:   oauth,
		lookup:  lookup,
		catalog: catalog,
		logger:  logger.With().Str("handler", "shipping").Logger(),
	}
}

// Quote handles POST /api/shipping/quote requests. The destination postal
// code is validated before any network call; carrier errors are forwarded
// with the upstream status and body.
func (h *ShippingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req model.QuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if !shipping.ValidPostalCode(req.To.PostalCode) {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidPostalCode,
			"destination postal code must be exactly 8 digits", h.logger)
		return
	}
	if len(req.Products) == 0 {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "at least one package is required", h.logger)
		return
	}

	if err := h.fillPackageDefaults(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	quotes, err := h.rates.CalculateRates(r.Context(), &req)
	if err != nil {
		var upstream *shipping.UpstreamError
		if errors.As(err, &upstream) {
			// Forward the carrier response verbatim.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(upstream.StatusCode)
			w.Write(upstream.Body)
			return
		}
		writeServiceError(w, err, h.logger)
		return
	}

	usable := shipping.FilterUsable(quotes)
	if len(usable) == 0 {
		writeError(w, http.StatusBadGateway, model.ErrCodeCarrierError,
			"no shipping service available for this destination", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, usable)
}

// fillPackageDefaults completes missing package dimensions and insurance
// values from the catalogue.
func (h *ShippingHandler) fillPackageDefaults(r *http.Request, req *model.QuoteRequest) error {
	for i := range req.Products {
		pkg := &req.Products[i]
		if pkg.Quantity <= 0 {
			pkg.Quantity = 1
		}
		if pkg.Weight > 0 && pkg.Height > 0 && pkg.Width > 0 && pkg.Length > 0 && pkg.InsuranceValue > 0 {
			continue
		}

		product, err := h.catalog.GetByID(r.Context(), pkg.ID)
		if err != nil {
			return err
		}

		if pkg.Weight <= 0 {
			pkg.Weight = product.Dimensions.Weight
		}
		if pkg.Height <= 0 {
			pkg.Height = product.Dimensions.Height
		}
		if pkg.Width <= 0 {
			pkg.Width = product.Dimensions.Width
		}
		if pkg.Length <= 0 {
			pkg.Length = product.Dimensions.Length
		}
		if pkg.InsuranceValue <= 0 {
			pkg.InsuranceValue = product.Price
		}
	}
	return nil
}

// OAuthCallback handles GET /api/shipping/auth/callback requests. The
// exchanged tokens are rendered as HTML for the operator to copy into
// server configuration.
func (h *ShippingHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "authorization code is required", h.logger)
		return
	}

	tokens, err := h.oauth.ExchangeCode(r.Context(), code)
	if err != nil {
		h.logger.Error().Err(err).Msg("carrier token exchange failed")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintf(w, "<html><body><h1>Token exchange failed</h1><p>%s</p></body></html>",
			html.EscapeString(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<html><body>
<h1>Carrier tokens</h1>
<p>Copy these values into the server configuration.</p>
<h2>Access token</h2><pre>%s</pre>
<h2>Refresh token</h2><pre>%s</pre>
<p>Expires in %d seconds.</p>
</body></html>`,
		html.EscapeString(tokens.AccessToken),
		html.EscapeString(tokens.RefreshToken),
		tokens.ExpiresIn)
}

// Lookup handles GET /api/address/lookup/{cep} requests.
func (h *ShippingHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	postalCode := pathParam(r, "/api/address/lookup/")
	if postalCode == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "postal code is required", h.logger)
		return
	}

	info, err := h.lookup.Lookup(r.Context(), postalCode)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeServiceError(w, err, h.logger)
			return
		}
		// Lookup failures are benign; callers treat them as not found.
		writeError(w, http.StatusNotFound, model.ErrCodeAddressNotFound, "postal code lookup failed", h.logger)
		return
	}
	if info == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeAddressNotFound, "postal code not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
