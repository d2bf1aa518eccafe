package domain

import (
	cart "github.com/dwikikusuma/qkart-client/internal/cart/domain"
)

// OrderSummary is the read-only order breakdown shown before checkout.
// Shipping is free on QKart; Total exists separately so a future charge
// slots in without touching callers.
type OrderSummary struct {
	Products int
	Subtotal float64
	Shipping float64
	Total    float64
}

func Summarize(lines []cart.DisplayLine) OrderSummary {
	subtotal := cart.TotalValue(lines)
	return OrderSummary{
		Products: cart.TotalItems(lines),
		Subtotal: subtotal,
		Shipping: 0,
		Total:    subtotal + 0,
	}
}
