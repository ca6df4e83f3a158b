package model

import "github.com/shopspring/decimal"

// Line is one row of the cart. ID is synthetic and unrelated to Product.ID.
type Line struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is unit price times quantity. An unparseable price counts as zero.
func (l Line) Subtotal() decimal.Decimal {
	price, err := l.Product.UnitPrice()
	if err != nil {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
