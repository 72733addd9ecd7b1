package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shopwire/shopwire-go/client"
)

// ProductsHandler exposes the search_products and get_product tools.
type ProductsHandler struct {
	client *client.Client
}

func NewProductsHandler(c *client.Client) *ProductsHandler {
	return &ProductsHandler{client: c}
}

// RegisterTools registers the product tools.
func (ph *ProductsHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool("search_products",
		mcp.WithDescription("Search the store catalog. Returns up to per_page matching products with name, SKU, price and stock status."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search term matched against product names and SKUs")),
		mcp.WithString("status", mcp.Description("Restrict to a product status (publish, draft, ...)")),
		mcp.WithNumber("per_page", mcp.Description("Number of results to return (1-100, default 10)")),
	)
	s.AddTool(searchTool, ph.handleSearch)

	getTool := mcp.NewTool("get_product",
		mcp.WithDescription("Fetch one product by its numeric ID, including pricing and stock fields."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The product ID")),
	)
	s.AddTool(getTool, ph.handleGet)
	return nil
}

func (ph *ProductsHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, _ := req.RequireString("query")

	perPage := 10
	if v, ok := req.GetArguments()["per_page"].(float64); ok {
		if v >= 1 && v <= 100 {
			perPage = int(v)
		}
	}

	params := client.Params{"search": query, "per_page": perPage}
	if status, ok := req.GetArguments()["status"].(string); ok && status != "" {
		params["status"] = status
	}

	products, err := ph.client.ListProducts(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search products failed: %v", err)), nil
	}

	payload := map[string]any{
		"products": products,
		"count":    len(products),
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (ph *ProductsHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := req.GetArguments()["id"].(float64)
	if !ok {
		return mcp.NewToolResultError("id must be a number"), nil
	}

	product, err := ph.client.GetProduct(ctx, int(id))
	if err != nil {
		if client.IsNotFound(err) {
			return mcp.NewToolResultError(fmt.Sprintf("product %d does not exist", int(id))), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("get product failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(product, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
