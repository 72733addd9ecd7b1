package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// options, tracing, custom TLS settings, etc. The per-request timeout is
// still enforced by the Client itself.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithTimeout overrides the default 30s per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		c.timeout = d
		return nil
	}
}

// WithVersion selects the API version path segment (default "v3").
func WithVersion(version string) Option {
	return func(c *Client) error {
		if version == "" {
			return fmt.Errorf("version must not be empty")
		}
		c.version = version
		return nil
	}
}

// WithAPIRoot overrides the API root path segment (default "sw-api").
// Needed for stores mounted under a custom prefix.
func WithAPIRoot(root string) Option {
	return func(c *Client) error {
		if root == "" {
			return fmt.Errorf("api root must not be empty")
		}
		c.apiRoot = root
		return nil
	}
}

// WithAuthMode forces an authentication mode instead of deriving it from
// the transport scheme. Forcing AuthQueryString over plain http exposes
// credentials on the wire; signed-header mode works over either scheme.
func WithAuthMode(mode AuthMode) Option {
	return func(c *Client) error {
		c.authMode = mode
		return nil
	}
}

// WithHeaders layers extra headers on top of the defaults for every
// request. A caller-supplied header replaces the default of the same name;
// all other defaults remain.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) error {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
		return nil
	}
}

// WithDebugLogging wraps the client's transport such that every
// request/response is dumped to the debug log when enabled is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}
