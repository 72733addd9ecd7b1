package client

import (
	"context"
	"fmt"
	"net/http"
)

// Product operations. Listing supports manual paging (ListProductsPage),
// full drains (ListAllProducts) and rate-paced batch updates.

// ListProducts fetches one page of products using caller-supplied params
// (search, status, page, per_page, ...).
func (c *Client) ListProducts(ctx context.Context, params Params) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "products", params, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsPage fetches an explicit page and reports the pagination
// totals the server sent along.
func (c *Client) ListProductsPage(ctx context.Context, page, perPage int, params Params) ([]Product, PageInfo, error) {
	var products []Product
	header, err := c.doWithHeaders(ctx, http.MethodGet, "products", withPagination(params, page, perPage), nil, &products)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return products, pageInfoFromHeader(header), nil
}

// ListAllProducts drains every page matching params.
func (c *Client) ListAllProducts(ctx context.Context, params Params) ([]Product, error) {
	return collectAll(ctx, defaultPageSize, func(ctx context.Context, page, perPage int) ([]Product, error) {
		return c.ListProducts(ctx, withPagination(params, page, perPage))
	})
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("products/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product and returns the stored representation.
func (c *Client) CreateProduct(ctx context.Context, product Product) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodPost, "products", nil, product, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct applies a partial update to the product with the given ID.
func (c *Client) UpdateProduct(ctx context.Context, id int, product Product) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("products/%d", id), nil, product, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct removes a product. With force the product is deleted
// permanently instead of trashed; DELETE carries it as a query parameter.
func (c *Client) DeleteProduct(ctx context.Context, id int, force bool) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("products/%d", id), Params{"force": force}, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// BatchUpdateProducts submits product updates through the batch endpoint,
// chunked to the server's 100-operation limit and paced by the configured
// inter-chunk delay. Results are concatenated in submission order.
func (c *Client) BatchUpdateProducts(ctx context.Context, updates []Product, opts ...BatchOption) ([]Product, error) {
	return submitInChunks(ctx, updates, batchConfig(opts), func(ctx context.Context, chunk []Product) ([]Product, error) {
		var resp batchResponse[Product]
		if err := c.do(ctx, http.MethodPost, "products/batch", nil, batchRequest[Product]{Update: chunk}, &resp); err != nil {
			return nil, err
		}
		return resp.Update, nil
	})
}

// ListVariations fetches one page of variations of a variable product.
func (c *Client) ListVariations(ctx context.Context, productID int, params Params) ([]Variation, error) {
	var variations []Variation
	path := fmt.Sprintf("products/%d/variations", productID)
	if err := c.do(ctx, http.MethodGet, path, params, nil, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

// GetVariation fetches a single variation of a product.
func (c *Client) GetVariation(ctx context.Context, productID, variationID int) (*Variation, error) {
	var v Variation
	path := fmt.Sprintf("products/%d/variations/%d", productID, variationID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListCategories fetches one page of product categories.
func (c *Client) ListCategories(ctx context.Context, params Params) ([]CategoryRef, error) {
	var categories []CategoryRef
	if err := c.do(ctx, http.MethodGet, "products/categories", params, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListTags fetches one page of product tags.
func (c *Client) ListTags(ctx context.Context, params Params) ([]TagRef, error) {
	var tags []TagRef
	if err := c.do(ctx, http.MethodGet, "products/tags", params, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
