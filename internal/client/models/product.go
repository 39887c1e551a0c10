// Package models defines the storefront data model: products, cart items,
// users, and their helpers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is shown when a product carries no images of its own.
const PlaceholderImage = "/placeholder.svg"

// Product is a single catalog listing. Products are immutable after
// creation; SellerName is denormalized from the seller account and no
// referential integrity is enforced on SellerID.
type Product struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Condition   Condition         `json:"condition"`
	Category    string            `json:"category"`
	SellerID    string            `json:"sellerId"`
	SellerName  string            `json:"sellerName"`
	Images      []string          `json:"images"`
	Properties  map[string]string `json:"properties"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// PrimaryImage returns the first image URI, or the placeholder when the
// product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return PlaceholderImage
	}
	return p.Images[0]
}
