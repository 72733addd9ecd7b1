package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

// fakePages returns a fetch func serving the given page sizes in order and
// counting invocations.
func fakePages(t *testing.T, sizes []int, calls *int) func(ctx context.Context, page, perPage int) ([]int, error) {
	t.Helper()
	return func(ctx context.Context, page, perPage int) ([]int, error) {
		*calls++
		if page != *calls {
			t.Fatalf("pages fetched out of order: got page %d on call %d", page, *calls)
		}
		if page > len(sizes) {
			return nil, nil
		}
		items := make([]int, sizes[page-1])
		for i := range items {
			items[i] = (page-1)*perPage + i
		}
		return items, nil
	}
}

func TestCollectAllStopsOnShortPage(t *testing.T) {
	calls := 0
	items, err := collectAll(context.Background(), 100, fakePages(t, []int{100, 100, 50}, &calls))
	if err != nil {
		t.Fatalf("collectAll: %v", err)
	}
	if len(items) != 250 {
		t.Fatalf("got %d items, want 250", len(items))
	}
	if calls != 3 {
		t.Fatalf("got %d calls, want exactly 3", calls)
	}
	for i, v := range items {
		if v != i {
			t.Fatalf("accumulation order broken at %d", i)
		}
	}
}

func TestCollectAllSinglePartialPage(t *testing.T) {
	calls := 0
	items, err := collectAll(context.Background(), 100, fakePages(t, []int{25}, &calls))
	if err != nil {
		t.Fatalf("collectAll: %v", err)
	}
	if len(items) != 25 || calls != 1 {
		t.Fatalf("got %d items in %d calls, want 25 in 1", len(items), calls)
	}
}

func TestCollectAllExactMultipleProbesOnce(t *testing.T) {
	// A full final page cannot signal exhaustion; one empty probe follows.
	calls := 0
	items, err := collectAll(context.Background(), 100, fakePages(t, []int{100}, &calls))
	if err != nil {
		t.Fatalf("collectAll: %v", err)
	}
	if len(items) != 100 || calls != 2 {
		t.Fatalf("got %d items in %d calls, want 100 in 2", len(items), calls)
	}
}

func TestCollectAllPropagatesError(t *testing.T) {
	boom := errors.New("page 2 unavailable")
	calls := 0
	_, err := collectAll(context.Background(), 10, func(ctx context.Context, page, perPage int) ([]int, error) {
		calls++
		if page == 2 {
			return nil, boom
		}
		items := make([]int, perPage)
		return items, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("fetch error not propagated: %v", err)
	}
	if calls != 2 {
		t.Fatalf("iteration must stop on error, got %d calls", calls)
	}
}

func TestListAllProducts(t *testing.T) {
	pages := map[int]int{1: 100, 2: 100, 3: 50}
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if r.URL.Query().Get("per_page") != "100" {
			t.Fatalf("per_page not set: %s", r.URL.RawQuery)
		}
		if r.URL.Query().Get("status") != "publish" {
			t.Fatalf("caller params lost on page %d", page)
		}
		products := make([]Product, pages[page])
		for i := range products {
			products[i] = Product{ID: (page-1)*100 + i + 1, Name: fmt.Sprintf("p%d", i)}
		}
		_ = json.NewEncoder(w).Encode(products)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	products, err := c.ListAllProducts(context.Background(), Params{"status": "publish"})
	if err != nil {
		t.Fatalf("ListAllProducts: %v", err)
	}
	if len(products) != 250 {
		t.Fatalf("got %d products, want 250", len(products))
	}
	if requests != 3 {
		t.Fatalf("got %d requests, want exactly 3", requests)
	}
	if products[0].ID != 1 || products[249].ID != 250 {
		t.Fatalf("page order broken: first=%d last=%d", products[0].ID, products[249].ID)
	}
}
