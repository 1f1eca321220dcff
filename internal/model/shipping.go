package model

import "encoding/json"

// QuoteRequest is the payload accepted by the shipping-quote endpoint and
// forwarded to the carrier's rate calculation API.
type QuoteRequest struct {
	From     *QuoteEndpoint `json:"from,omitempty"`
	To       QuoteEndpoint  `json:"to"`
	Products []QuotePackage `json:"products"`
}

// QuoteEndpoint identifies one end of a shipment by postal code.
type QuoteEndpoint struct {
	PostalCode string `json:"postal_code"`
}

// QuotePackage describes one package line sent to the carrier. Dimensions
// are in centimetres, weight in kilograms, insurance value equals the item
// unit price.
type QuotePackage struct {
	ID             string  `json:"id"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Length         float64 `json:"length"`
	Weight         float64 `json:"weight"`
	InsuranceValue float64 `json:"insurance_value"`
	Quantity       int     `json:"quantity"`
}

// Quote is one carrier service option returned by the rate calculation API.
// The carrier returns price as a string and flags unavailable services with
// an error field instead of omitting them.
type Quote struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Price        json.Number   `json:"price,omitempty"`
	DeliveryTime int           `json:"delivery_time,omitempty"`
	Company      *QuoteCompany `json:"company,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// QuoteCompany identifies the carrier behind a quote.
type QuoteCompany struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PriceValue returns the parsed price and whether it is usable (> 0).
func (q Quote) PriceValue() (float64, bool) {
	if q.Price == "" {
		return 0, false
	}
	v, err := q.Price.Float64()
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Usable reports whether the quote can be offered for selection: it carries
// no error flag and has a usable price.
func (q Quote) Usable() bool {
	if q.Error != "" {
		return false
	}
	_, ok := q.PriceValue()
	return ok
}

// AddressInfo is the result of a postal-code autofill lookup.
type AddressInfo struct {
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}
