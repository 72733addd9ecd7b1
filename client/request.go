package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// do executes one logical request: build URL, authenticate, enforce the
// configured timeout, dispatch and either decode the success body into out
// or return a typed *APIError. A nil out skips body decoding.
func (c *Client) do(ctx context.Context, method, path string, params Params, payload, out any) error {
	_, err := c.doWithHeaders(ctx, method, path, params, payload, out)
	return err
}

// doWithHeaders is the full request executor; it additionally returns the
// response headers so listing helpers can read pagination totals.
func (c *Client) doWithHeaders(ctx context.Context, method, path string, params Params, payload, out any) (http.Header, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &APIError{Kind: KindGeneric, Message: fmt.Sprintf("encode request body: %v", err), Err: err}
		}
		body = bytes.NewReader(b)
	}

	u, err := url.Parse(c.endpointURL(path))
	if err != nil {
		return nil, &APIError{Kind: KindGeneric, Message: fmt.Sprintf("invalid endpoint URL: %v", err), Err: err}
	}
	if qs := params.Encode(); qs != "" {
		u.RawQuery = qs
	}

	// Scoped timeout owned by this call; released on every exit path.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &APIError{Kind: KindGeneric, Message: fmt.Sprintf("build request: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "shopwire-go/"+Version)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	c.authenticate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := c.transportError(err)
		requestFailuresTotal.WithLabelValues(string(apiErr.Kind)).Inc()
		return nil, apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := newNetworkError("read response body", err)
		requestFailuresTotal.WithLabelValues(string(apiErr.Kind)).Inc()
		return resp.Header, apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := classifyResponse(resp.StatusCode, data, resp.Header)
		requestFailuresTotal.WithLabelValues(string(apiErr.Kind)).Inc()
		return resp.Header, apiErr
	}

	// 204 carries no body by definition.
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return resp.Header, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.Header, &APIError{
			Kind:       KindGeneric,
			Message:    fmt.Sprintf("decode response body: %v", err),
			StatusCode: resp.StatusCode,
			Body:       data,
			Err:        err,
		}
	}
	return resp.Header, nil
}

// transportError converts an http.Client.Do failure into a network-kind
// error. A deadline hit gets its own message so callers can tell a timeout
// from a refused connection or DNS failure.
func (c *Client) transportError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newNetworkError(fmt.Sprintf("request timed out after %s", c.timeout), err)
	}
	if errors.Is(err, context.Canceled) {
		return newNetworkError("request canceled", err)
	}
	return newNetworkError("request failed", err)
}

// PageInfo carries the pagination totals the API reports through response
// headers. Absent or non-numeric headers yield -1.
type PageInfo struct {
	Total      int
	TotalPages int
}

func pageInfoFromHeader(h http.Header) PageInfo {
	return PageInfo{
		Total:      intHeader(h, "X-Total-Count"),
		TotalPages: intHeader(h, "X-Total-Pages"),
	}
}

func intHeader(h http.Header, key string) int {
	n, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return -1
	}
	return n
}
