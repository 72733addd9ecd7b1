// Package client is a typed Go client for the Shopwire commerce REST API.
//
// A Client turns logical operations (method, path, query, body) into
// authenticated HTTP requests, classifies failures into a typed error
// taxonomy (APIError) and ships resilience helpers: Retry for bounded
// exponential backoff, ListAll* for auto-pagination and BatchUpdate* for
// rate-paced chunked submission.
package client

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Version is the client library version reported in the User-Agent header.
const Version = "1.2.0"

const (
	defaultAPIRoot = "sw-api"
	defaultVersion = "v3"
	defaultTimeout = 30 * time.Second
)

// Client issues authenticated requests against one Shopwire store. It is
// immutable after New and safe for concurrent use.
type Client struct {
	baseURL  string
	apiRoot  string
	version  string
	key      string
	secret   string
	authMode AuthMode
	timeout  time.Duration
	headers  map[string]string
	http     *http.Client
}

// New constructs a Client for the store at baseURL using the given
// credential pair. The base URL is normalized (https assumed when no scheme
// is given, one trailing slash stripped) and the authentication mode is
// derived from its transport scheme unless overridden by WithAuthMode.
func New(baseURL, consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("shopwire: store URL is required")
	}
	if consumerKey == "" || consumerSecret == "" {
		return nil, fmt.Errorf("shopwire: consumer key and secret are required")
	}

	c := &Client{
		baseURL: normalizeBaseURL(baseURL),
		apiRoot: defaultAPIRoot,
		version: defaultVersion,
		key:     consumerKey,
		secret:  consumerSecret,
		timeout: defaultTimeout,
		http:    &http.Client{},
	}
	c.authMode = defaultAuthMode(c.baseURL)

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("SHOPWIRE_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// normalizeBaseURL strips exactly one trailing slash and defaults the
// scheme to https when none is present. Already-normalized input passes
// through unchanged.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSuffix(raw, "/")
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// endpointURL joins the normalized base, API root, version and a relative
// resource path (no leading slash).
func (c *Client) endpointURL(path string) string {
	return fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.apiRoot, c.version, path)
}

// --------------------------------------------------------------------
// debugTransport – optional HTTP round-trip logger
// --------------------------------------------------------------------

type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, err := httputil.DumpRequestOut(req, true)
	if err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}
