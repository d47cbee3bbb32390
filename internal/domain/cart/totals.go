// internal/domain/cart/totals.go
package cart

import "github.com/FedericoLuna01/wallbit-challenge/internal/domain/discount"

// ComputeTotals derives the cart totals from the line items and the active
// discount. It is a pure function and must be re-invoked after every change
// to either input; nothing caches its result.
func ComputeTotals(items []LineItem, active *discount.Discount) Totals {
	var totals Totals

	for _, item := range items {
		totals.ItemCount += item.Quantity
		totals.Subtotal += item.Price * float64(item.Quantity)
	}

	totals.Total = totals.Subtotal
	if active != nil {
		totals.Discount = totals.Subtotal * active.Percentage / 100
		totals.Total = totals.Subtotal - totals.Discount
	}

	return totals
}
