package tools

import (
	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	"github.com/Vehicle-Shield/storefront/internal/cart/state"
)

// LineView is a cart line as shown to the caller, localized.
type LineView struct {
	LineID    int64  `json:"line_id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// CartView is the {items, total, itemCount} triple.
type CartView struct {
	Items     []LineView `json:"items"`
	Total     string     `json:"total"`
	ItemCount int        `json:"item_count"`
}

// ServiceView is a catalog entry as shown to the caller, localized.
type ServiceView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	InStock     bool   `json:"in_stock"`
	Featured    bool   `json:"featured,omitempty"`
}

func newCartView(st state.State, lang model.Language) *CartView {
	items := st.Items()
	view := &CartView{
		Items:     make([]LineView, 0, len(items)),
		Total:     st.Total().StringFixed(2),
		ItemCount: st.ItemCount(),
	}
	for _, line := range items {
		view.Items = append(view.Items, LineView{
			LineID:    line.ID,
			ProductID: line.Product.ID,
			Name:      line.Product.Name(lang),
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return view
}

func newServiceView(p model.Product, lang model.Language) ServiceView {
	return ServiceView{
		ID:          p.ID,
		Name:        p.Name(lang),
		Description: p.Description(lang),
		Price:       p.Price,
		InStock:     p.InStock(1),
		Featured:    p.IsFeatured,
	}
}
