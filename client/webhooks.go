package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListWebhooks fetches one page of registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context, params Params) ([]Webhook, error) {
	var hooks []Webhook
	if err := c.do(ctx, http.MethodGet, "webhooks", params, nil, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

// GetWebhook fetches a single webhook by ID.
func (c *Client) GetWebhook(ctx context.Context, id int) (*Webhook, error) {
	var hook Webhook
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("webhooks/%d", id), nil, nil, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// CreateWebhook registers a delivery target for a topic.
func (c *Client) CreateWebhook(ctx context.Context, hook Webhook) (*Webhook, error) {
	var created Webhook
	if err := c.do(ctx, http.MethodPost, "webhooks", nil, hook, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWebhook applies a partial update to a webhook (e.g. pausing it).
func (c *Client) UpdateWebhook(ctx context.Context, id int, hook Webhook) (*Webhook, error) {
	var updated Webhook
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("webhooks/%d", id), nil, hook, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWebhook removes a webhook; force skips the trash.
func (c *Client) DeleteWebhook(ctx context.Context, id int, force bool) (*Webhook, error) {
	var deleted Webhook
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("webhooks/%d", id), Params{"force": force}, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
