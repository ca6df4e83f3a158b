// Package catalog is an in-process stand-in for the storefront's product
// service. The cart never calls it; callers resolve products here and hand
// the snapshot to the cart.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
)

var ErrProductNotFound = errors.New("product not found")

type Catalog interface {
	Get(ctx context.Context, id int64) (model.Product, error)
	Search(ctx context.Context, query string, categoryID int64, max int) []model.Product
}

// Static serves a fixed product list.
type Static struct {
	products []model.Product
	byID     map[int64]int
}

func NewStatic(products []model.Product) *Static {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Static{products: products, byID: byID}
}

// Default returns the catalog seeded with the storefront's service list.
func Default() *Static {
	return NewStatic(Services)
}

func (s *Static) Get(_ context.Context, id int64) (model.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

// Search matches query against both languages' names and descriptions.
// An empty query matches everything; categoryID 0 means any category.
func (s *Static) Search(_ context.Context, query string, categoryID int64, max int) []model.Product {
	if max <= 0 {
		max = 10
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var out []model.Product
	for _, p := range s.products {
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
		if len(out) == max {
			break
		}
	}
	return out
}

func matches(p model.Product, q string) bool {
	for _, field := range []string{p.NameEn, p.NameAr, p.DescriptionEn, p.DescriptionAr} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

var _ Catalog = (*Static)(nil)
