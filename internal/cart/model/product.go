package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is the catalog record a cart line snapshots at insertion time.
// Prices travel as decimal strings so no float rounding happens at the boundary.
type Product struct {
	ID            int64  `json:"id"`
	NameEn        string `json:"nameEn"`
	NameAr        string `json:"nameAr"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	DescriptionAr string `json:"descriptionAr,omitempty"`
	Price         string `json:"price"`
	ImageURL      string `json:"imageUrl,omitempty"`
	CategoryID    int64  `json:"categoryId,omitempty"`
	IsAvailable   bool   `json:"isAvailable"`
	IsFeatured    bool   `json:"isFeatured,omitempty"`
	Stock         *int   `json:"stock"`
}

// Name returns the product name in lang, falling back to the other language.
func (p Product) Name(lang Language) string {
	if lang == English {
		if p.NameEn != "" {
			return p.NameEn
		}
		return p.NameAr
	}
	if p.NameAr != "" {
		return p.NameAr
	}
	return p.NameEn
}

// Description returns the product description in lang, falling back to the other language.
func (p Product) Description(lang Language) string {
	if lang == English {
		if p.DescriptionEn != "" {
			return p.DescriptionEn
		}
		return p.DescriptionAr
	}
	if p.DescriptionAr != "" {
		return p.DescriptionAr
	}
	return p.DescriptionEn
}

// UnitPrice parses Price.
func (p Product) UnitPrice() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(p.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("product %d: parse price %q: %w", p.ID, p.Price, err)
	}
	return d, nil
}

// InStock reports whether quantity units can be ordered. A nil Stock means untracked.
func (p Product) InStock(quantity int) bool {
	if !p.IsAvailable {
		return false
	}
	if p.Stock == nil {
		return true
	}
	return *p.Stock >= quantity
}
