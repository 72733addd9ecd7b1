package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, url string, opts ...Option) *Client {
	t.Helper()
	c, err := New(url, "ck", "cs", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestDoSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sw-api/v3/products/42" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Fatalf("missing Accept header")
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "shopwire-go/") {
			t.Fatalf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "OAuth ") {
			t.Fatalf("plaintext transport must sign requests")
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Product{ID: 42, Name: "Widget"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	p, err := c.GetProduct(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p.ID != 42 || p.Name != "Widget" {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestDoQueryStringAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("consumer_key") != "ck" || q.Get("consumer_secret") != "cs" {
			t.Fatalf("credentials missing from query: %s", r.URL.RawQuery)
		}
		if q.Get("status") != "publish" {
			t.Fatalf("caller params lost: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]Product{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithAuthMode(AuthQueryString))
	if _, err := c.ListProducts(context.Background(), Params{"status": "publish"}); err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
}

func TestDoNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	var out Product
	if err := c.do(context.Background(), http.MethodDelete, "products/7", nil, nil, &out); err != nil {
		t.Fatalf("204 must be success: %v", err)
	}
	if out.ID != 0 {
		t.Fatalf("204 must not decode a body")
	}
}

func TestDoClassifiesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"sw_rest_invalid_id","message":"Invalid ID."}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetProduct(context.Background(), 999)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	var apiErr *APIError
	if !asAPIError(err, &apiErr) || apiErr.Message != "Invalid ID." {
		t.Fatalf("body message not surfaced: %v", err)
	}
}

func TestDoTimeoutIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.GetProduct(context.Background(), 1)
	if !IsNetwork(err) {
		t.Fatalf("timeout should classify as network error, got %v", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("timeout message should name the timeout: %v", err)
	}
}

func TestDoConnectionRefusedIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.GetProduct(context.Background(), 1)
	if !IsNetwork(err) {
		t.Fatalf("refused connection should classify as network error, got %v", err)
	}
}

func TestDoHeaderOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "inventory-sync/2.0" {
			t.Fatalf("caller header should override default, got %q", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Fatalf("untouched defaults must remain")
		}
		_ = json.NewEncoder(w).Encode([]Product{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithHeaders(map[string]string{"User-Agent": "inventory-sync/2.0"}))
	if _, err := c.ListProducts(context.Background(), nil); err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
}

func TestPageInfoFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Total-Count", "250")
		w.Header().Set("X-Total-Pages", "3")
		_ = json.NewEncoder(w).Encode([]Product{{ID: 1}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, info, err := c.ListProductsPage(context.Background(), 1, 100, nil)
	if err != nil {
		t.Fatalf("ListProductsPage: %v", err)
	}
	if info.Total != 250 || info.TotalPages != 3 {
		t.Fatalf("page info = %+v", info)
	}

	h := http.Header{}
	h.Set("X-Total-Count", "lots")
	if got := pageInfoFromHeader(h); got.Total != -1 || got.TotalPages != -1 {
		t.Fatalf("non-numeric headers should yield -1, got %+v", got)
	}
}

// asAPIError is a tiny local wrapper to keep test call sites short.
func asAPIError(err error, target **APIError) bool {
	if err == nil {
		return false
	}
	e, ok := err.(*APIError)
	if ok {
		*target = e
	}
	return ok
}
