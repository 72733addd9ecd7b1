package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListCoupons fetches one page of coupons.
func (c *Client) ListCoupons(ctx context.Context, params Params) ([]Coupon, error) {
	var coupons []Coupon
	if err := c.do(ctx, http.MethodGet, "coupons", params, nil, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// ListAllCoupons drains every page matching params.
func (c *Client) ListAllCoupons(ctx context.Context, params Params) ([]Coupon, error) {
	return collectAll(ctx, defaultPageSize, func(ctx context.Context, page, perPage int) ([]Coupon, error) {
		return c.ListCoupons(ctx, withPagination(params, page, perPage))
	})
}

// GetCoupon fetches a single coupon by ID.
func (c *Client) GetCoupon(ctx context.Context, id int) (*Coupon, error) {
	var coupon Coupon
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("coupons/%d", id), nil, nil, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, coupon Coupon) (*Coupon, error) {
	var created Coupon
	if err := c.do(ctx, http.MethodPost, "coupons", nil, coupon, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCoupon applies a partial update to a coupon.
func (c *Client) UpdateCoupon(ctx context.Context, id int, coupon Coupon) (*Coupon, error) {
	var updated Coupon
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("coupons/%d", id), nil, coupon, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCoupon removes a coupon; force skips the trash.
func (c *Client) DeleteCoupon(ctx context.Context, id int, force bool) (*Coupon, error) {
	var deleted Coupon
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("coupons/%d", id), Params{"force": force}, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
