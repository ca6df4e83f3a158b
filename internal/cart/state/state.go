// Package state holds the cart reducer: one immutable State shape and the
// pure transitions between values of it.
package state

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
)

// State is an immutable view of the cart. Total and ItemCount are always
// derived from items by newState; there is no way to set them directly.
type State struct {
	items     []model.Line
	total     decimal.Decimal
	itemCount int
}

// Empty returns the state with no lines.
func Empty() State {
	return newState(nil)
}

func newState(items []model.Line) State {
	if items == nil {
		items = []model.Line{}
	}
	total := decimal.Zero
	count := 0
	for _, line := range items {
		total = total.Add(line.Subtotal())
		count += line.Quantity
	}
	return State{items: items, total: total, itemCount: count}
}

// Items returns a copy of the lines in insertion order.
func (s State) Items() []model.Line {
	out := make([]model.Line, len(s.items))
	copy(out, s.items)
	return out
}

func (s State) Total() decimal.Decimal {
	return s.total
}

func (s State) ItemCount() int {
	return s.itemCount
}

func (s State) Len() int {
	return len(s.items)
}

func (s State) IsEmpty() bool {
	return len(s.items) == 0
}

// Line returns the line holding productID.
func (s State) Line(productID int64) (model.Line, bool) {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return model.Line{}, false
}

func (s State) indexOf(productID int64) int {
	for i, line := range s.items {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s State) maxLineID() int64 {
	var max int64
	for _, line := range s.items {
		if line.ID > max {
			max = line.ID
		}
	}
	return max
}

type stateJSON struct {
	Items     []model.Line `json:"items"`
	Total     string       `json:"total"`
	ItemCount int          `json:"itemCount"`
}

// MarshalJSON renders {items, total, itemCount} with total fixed to two decimals.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Items:     s.Items(),
		Total:     s.total.StringFixed(2),
		ItemCount: s.itemCount,
	})
}
