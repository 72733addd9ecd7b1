package client

import "context"

// defaultPageSize is the per_page value used by the ListAll helpers.
const defaultPageSize = 100

// collectAll drains a paginated listing by fetching page 1, 2, 3, ... with a
// fixed page size, accumulating items in order. It stops as soon as a page
// comes back strictly shorter than perPage; when the total is an exact
// multiple of perPage this costs one extra empty-page probe. Pages are
// fetched strictly sequentially and there is no upper bound on page count.
func collectAll[T any](ctx context.Context, perPage int, fetch func(ctx context.Context, page, perPage int) ([]T, error)) ([]T, error) {
	if perPage <= 0 {
		perPage = defaultPageSize
	}
	var items []T
	for page := 1; ; page++ {
		batch, err := fetch(ctx, page, perPage)
		if err != nil {
			return items, err
		}
		items = append(items, batch...)
		if len(batch) < perPage {
			return items, nil
		}
	}
}

// withPagination copies params and stamps the page cursor onto the copy so
// the caller's map is never mutated.
func withPagination(params Params, page, perPage int) Params {
	merged := make(Params, len(params)+2)
	for k, v := range params {
		merged[k] = v
	}
	merged["page"] = page
	merged["per_page"] = perPage
	return merged
}
