package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// ===================================
// Search Services Tool
// ===================================

const maxSearchResults = 20

type SearchServicesInput struct {
	Query      string `json:"query"`
	CategoryID int64  `json:"category_id,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchServicesOutput struct {
	Services []ServiceView `json:"services"`
	Total    int           `json:"total"`
}

func (m *Manager) createSearchServicesTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "search_services",
			Desc: "Search the vehicle protection services catalog (paint protection film, ceramic coating, window tint, interior protection). Accepts Arabic or English keywords. Returns service id, localized name, price and availability. Use the returned id with add_to_cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type: "string",
					Desc: "Keywords in Arabic or English, e.g. ceramic, تظليل, PPF. Empty returns the whole catalog.",
				},
				"category_id": {
					Type: "integer",
					Desc: "Optional category filter: 1 paint protection, 2 coating, 3 tint, 4 interior",
				},
				"max_results": {
					Type: "integer",
					Desc: "Maximum number of services to return (default: 10, max: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchServicesInput) (*SearchServicesOutput, error) {
			if in.MaxResults <= 0 {
				in.MaxResults = 10
			}
			if in.MaxResults > maxSearchResults {
				in.MaxResults = maxSearchResults
			}

			products := m.catalog.Search(ctx, in.Query, in.CategoryID, in.MaxResults)
			out := &SearchServicesOutput{Services: make([]ServiceView, 0, len(products))}
			for _, p := range products {
				out.Services = append(out.Services, newServiceView(p, m.lang))
			}
			out.Total = len(out.Services)
			return out, nil
		},
	)
}
