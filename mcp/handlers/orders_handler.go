package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shopwire/shopwire-go/client"
)

// OrdersHandler exposes the list_orders tool.
type OrdersHandler struct {
	client *client.Client
}

func NewOrdersHandler(c *client.Client) *OrdersHandler {
	return &OrdersHandler{client: c}
}

// RegisterTools registers the order tools.
func (oh *OrdersHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_orders",
		mcp.WithDescription("List recent orders, optionally filtered by status. Each order includes totals, customer ID and line items."),
		mcp.WithString("status", mcp.Description("Restrict to an order status (processing, completed, refunded, ...)")),
		mcp.WithNumber("per_page", mcp.Description("Number of orders to return (1-100, default 10)")),
	)
	s.AddTool(listTool, oh.handleList)
	return nil
}

func (oh *OrdersHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	perPage := 10
	if v, ok := req.GetArguments()["per_page"].(float64); ok {
		if v >= 1 && v <= 100 {
			perPage = int(v)
		}
	}

	params := client.Params{"per_page": perPage}
	if status, ok := req.GetArguments()["status"].(string); ok && status != "" {
		params["status"] = status
	}

	orders, err := oh.client.ListOrders(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list orders failed: %v", err)), nil
	}

	payload := map[string]any{
		"orders": orders,
		"count":  len(orders),
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
