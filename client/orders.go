package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, params Params) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "orders", params, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrdersPage fetches an explicit page plus the server's pagination totals.
func (c *Client) ListOrdersPage(ctx context.Context, page, perPage int, params Params) ([]Order, PageInfo, error) {
	var orders []Order
	header, err := c.doWithHeaders(ctx, http.MethodGet, "orders", withPagination(params, page, perPage), nil, &orders)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return orders, pageInfoFromHeader(header), nil
}

// ListAllOrders drains every page matching params.
func (c *Client) ListAllOrders(ctx context.Context, params Params) ([]Order, error) {
	return collectAll(ctx, defaultPageSize, func(ctx context.Context, page, perPage int) ([]Order, error) {
		return c.ListOrders(ctx, withPagination(params, page, perPage))
	})
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id int) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("orders/%d", id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder creates an order.
func (c *Client) CreateOrder(ctx context.Context, order Order) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodPost, "orders", nil, order, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrder applies a partial update to an order.
func (c *Client) UpdateOrder(ctx context.Context, id int, order Order) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("orders/%d", id), nil, order, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOrder removes an order; force skips the trash.
func (c *Client) DeleteOrder(ctx context.Context, id int, force bool) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("orders/%d", id), Params{"force": force}, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// BatchUpdateOrders submits order updates through the batch endpoint in
// paced chunks of at most 100 operations.
func (c *Client) BatchUpdateOrders(ctx context.Context, updates []Order, opts ...BatchOption) ([]Order, error) {
	return submitInChunks(ctx, updates, batchConfig(opts), func(ctx context.Context, chunk []Order) ([]Order, error) {
		var resp batchResponse[Order]
		if err := c.do(ctx, http.MethodPost, "orders/batch", nil, batchRequest[Order]{Update: chunk}, &resp); err != nil {
			return nil, err
		}
		return resp.Update, nil
	})
}

// ListRefunds fetches the refunds recorded against an order.
func (c *Client) ListRefunds(ctx context.Context, orderID int, params Params) ([]Refund, error) {
	var refunds []Refund
	path := fmt.Sprintf("orders/%d/refunds", orderID)
	if err := c.do(ctx, http.MethodGet, path, params, nil, &refunds); err != nil {
		return nil, err
	}
	return refunds, nil
}

// CreateRefund records a refund against an order.
func (c *Client) CreateRefund(ctx context.Context, orderID int, refund Refund) (*Refund, error) {
	var r Refund
	path := fmt.Sprintf("orders/%d/refunds", orderID)
	if err := c.do(ctx, http.MethodPost, path, nil, refund, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
