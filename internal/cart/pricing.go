package cart

import "arena-store/internal/model"

// installmentCount is the number of interest-free installments shown next
// to the total. Presentational only.
const installmentCount = 10

// Subtotal computes the sum of unit price times quantity over all lines.
func Subtotal(items []model.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}

// Total composes the order total from the subtotal, an optional coupon
// discount, and the selected shipping cost. With no quote selected the
// shipping contribution is zero. The merchandise part never goes below
// zero, so an oversized discount cannot eat into the shipping cost.
func Total(subtotal, discount, shipping float64) float64 {
	merchandise := subtotal - discount
	if merchandise < 0 {
		merchandise = 0
	}
	return merchandise + shipping
}

// Installment returns the per-installment display value for a total.
func Installment(total float64) float64 {
	return total / installmentCount
}

// Totals bundles the computed pricing of a cart.
type Totals struct {
	Subtotal    float64
	Discount    float64
	Shipping    float64
	Total       float64
	Installment float64
}

// Price computes all totals for a cart with an optional selected quote
// price and coupon discount. Pure function of its inputs.
func Price(items []model.CartItem, discount, shipping float64) Totals {
	subtotal := Subtotal(items)
	total := Total(subtotal, discount, shipping)

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Shipping:    shipping,
		Total:       total,
		Installment: Installment(total),
	}
}
