package domain

import "github.com/shopspring/decimal"

// Rating is the aggregate customer rating attached to a catalog product.
type Rating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}

// Product is a catalog item as served by the remote catalog API.
// Products are read-only: they are fetched, cached and displayed,
// never mutated by this service.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}
