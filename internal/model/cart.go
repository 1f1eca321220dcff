package model

// CartItem is a transient line in a customer's cart. UnitPrice is captured
// when the product enters the cart so checkout snapshots it unchanged.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// CartItemRequest represents the payload for adding an item to the cart.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest represents the payload for changing a line's quantity.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents the cart with its computed totals.
type CartResponse struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Total       float64    `json:"total"`
	Installment float64    `json:"installment"`
}
