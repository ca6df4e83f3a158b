package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/Vehicle-Shield/storefront/internal/catalog"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be a positive integer")
	ErrUnavailable         = errors.New("service is not available in the requested quantity")
)

type AddToCartInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity,omitempty"`
}

type RemoveFromCartInput struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartQuantityInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ClearCartInput struct{}

type ViewCartInput struct{}

var productIDParam = &schema.ParameterInfo{
	Type:     "integer",
	Desc:     "Service id from search_services results. Must be an exact id.",
	Required: true,
}

func (m *Manager) createAddToCartTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "add_to_cart",
			Desc: "Add a service to the customer's cart. Adding a service already in the cart increases its quantity. Returns the updated cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": productIDParam,
				"quantity": {
					Type: "integer",
					Desc: "Units to add (default: 1). Must be positive.",
				},
			}),
		},
		func(ctx context.Context, in *AddToCartInput) (*CartView, error) {
			if in.Quantity == 0 {
				in.Quantity = 1
			}
			if in.Quantity < 0 {
				return nil, ErrQuantityNotPositive
			}

			product, err := m.catalog.Get(ctx, in.ProductID)
			if err != nil {
				return nil, fmt.Errorf("product %d: %w", in.ProductID, err)
			}

			wanted := in.Quantity
			if line, ok := m.store.State().Line(in.ProductID); ok {
				wanted += line.Quantity
			}
			if !product.InStock(wanted) {
				return nil, fmt.Errorf("product %d: %w", in.ProductID, ErrUnavailable)
			}

			return newCartView(m.store.AddItem(ctx, product, in.Quantity), m.lang), nil
		},
	)
}

func (m *Manager) createRemoveFromCartTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "remove_from_cart",
			Desc: "Remove a service from the cart entirely. Removing a service that is not in the cart does nothing. Returns the updated cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": productIDParam,
			}),
		},
		func(ctx context.Context, in *RemoveFromCartInput) (*CartView, error) {
			return newCartView(m.store.RemoveItem(ctx, in.ProductID), m.lang), nil
		},
	)
}

func (m *Manager) createUpdateCartQuantityTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "update_cart_quantity",
			Desc: "Set the quantity of a service already in the cart. Quantity 0 removes it. Returns the updated cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": productIDParam,
				"quantity": {
					Type:     "integer",
					Desc:     "New absolute quantity, not a delta.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *UpdateCartQuantityInput) (*CartView, error) {
			if in.Quantity < 0 {
				return nil, ErrQuantityNotPositive
			}
			if in.Quantity > 0 {
				product, err := m.catalog.Get(ctx, in.ProductID)
				if err != nil && !errors.Is(err, catalog.ErrProductNotFound) {
					return nil, fmt.Errorf("product %d: %w", in.ProductID, err)
				}
				if err == nil && !product.InStock(in.Quantity) {
					return nil, fmt.Errorf("product %d: %w", in.ProductID, ErrUnavailable)
				}
			}
			return newCartView(m.store.UpdateQuantity(ctx, in.ProductID, in.Quantity), m.lang), nil
		},
	)
}

func (m *Manager) createClearCartTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "clear_cart",
			Desc: "Remove every service from the cart. Returns the empty cart.",
		},
		func(ctx context.Context, _ *ClearCartInput) (*CartView, error) {
			return newCartView(m.store.Clear(ctx), m.lang), nil
		},
	)
}

func (m *Manager) createViewCartTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "view_cart",
			Desc: "Show the cart: lines with localized names, quantities and subtotals, the total and the item count.",
		},
		func(ctx context.Context, _ *ViewCartInput) (*CartView, error) {
			return newCartView(m.store.State(), m.lang), nil
		},
	)
}
