package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListCustomers fetches one page of customers.
func (c *Client) ListCustomers(ctx context.Context, params Params) ([]Customer, error) {
	var customers []Customer
	if err := c.do(ctx, http.MethodGet, "customers", params, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// ListAllCustomers drains every page matching params.
func (c *Client) ListAllCustomers(ctx context.Context, params Params) ([]Customer, error) {
	return collectAll(ctx, defaultPageSize, func(ctx context.Context, page, perPage int) ([]Customer, error) {
		return c.ListCustomers(ctx, withPagination(params, page, perPage))
	})
}

// GetCustomer fetches a single customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	var cust Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("customers/%d", id), nil, nil, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

// CreateCustomer creates a customer account.
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	var cust Customer
	if err := c.do(ctx, http.MethodPost, "customers", nil, customer, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

// UpdateCustomer applies a partial update to a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int, customer Customer) (*Customer, error) {
	var cust Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("customers/%d", id), nil, customer, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

// DeleteCustomer removes a customer account. Deletion is permanent; the
// API requires force=true and rejects the call otherwise.
func (c *Client) DeleteCustomer(ctx context.Context, id int) (*Customer, error) {
	var cust Customer
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("customers/%d", id), Params{"force": true}, nil, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}
