package domain

import "github.com/shopspring/decimal"

// CartItem is one line of the cart: a product plus the quantity chosen.
// Quantity is always >= 1 while the line exists; a quantity of zero means
// the line must be removed, never stored.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered sequence of cart lines, first-added first.
// Totals are derived by folding over the lines on every call; they are
// never stored alongside the lines, so they cannot drift.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalItems returns the sum of quantities across all lines.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price*quantity across all lines.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
