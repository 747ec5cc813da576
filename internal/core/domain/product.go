package domain

import "time"

// Product is a catalog entry owned by the store API.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
	DiscPrice   float64   `json:"disc_price"`
	Stock       int       `json:"stock"`
	Sold        int       `json:"sold"`
	Image       string    `json:"image"`
	InStock     bool      `json:"in_stock"`
	Locality    string    `json:"locality,omitempty"`
	Category    string    `json:"category,omitempty"`
	Seller      string    `json:"seller,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// DisplayPrice returns the price a buyer actually pays: the discounted price
// when one is present and nonzero, otherwise the list price.
func (p Product) DisplayPrice() float64 {
	if p.DiscPrice > 0 {
		return p.DiscPrice
	}
	return p.Price
}

// Cart is the server-owned shopping bag attached to a user.
type Cart struct {
	// Total is computed server-side; discounted pricing may apply, so the
	// client never derives it from line items.
	Total string     `json:"total"`
	Slug  string     `json:"slug,omitempty"`
	Items []CartItem `json:"cart_items"`
}

// CartItem is one line of the cart. Total is the server-computed line total.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Total    string  `json:"total"`
}
