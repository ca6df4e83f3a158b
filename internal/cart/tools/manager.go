package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	"github.com/Vehicle-Shield/storefront/internal/cart/store"
	"github.com/Vehicle-Shield/storefront/internal/catalog"
)

// Manager owns the cart tools of one session.
type Manager struct {
	store   *store.Store
	catalog catalog.Catalog
	lang    model.Language
	tools   []tool.BaseTool
}

func NewManager(cartStore *store.Store, cat catalog.Catalog, lang model.Language) *Manager {
	m := &Manager{store: cartStore, catalog: cat, lang: lang}
	m.tools = []tool.BaseTool{
		m.createSearchServicesTool(),
		m.createAddToCartTool(),
		m.createRemoveFromCartTool(),
		m.createUpdateCartQuantityTool(),
		m.createClearCartTool(),
		m.createViewCartTool(),
	}
	return m
}

func (m *Manager) Tools() []tool.BaseTool {
	return m.tools
}

// ToolInfos returns the schemas to bind to a chat model.
func (m *Manager) ToolInfos(ctx context.Context) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(m.tools))
	for _, t := range m.tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
