package models

import "github.com/shopspring/decimal"

// CartItem is one line of the cart: a product reference, the selected
// quantity, and a denormalized copy of the product taken at add time.
// The cart holds at most one CartItem per distinct ProductID.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// LineTotal is the unit price multiplied by the quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
