package query

import (
	"context"
	"iter"
)

// Page is one slice of query results. An empty Cursor marks the last page.
type Page[T any] struct {
	Items  []T
	Cursor string
}

// HasMore reports whether another page can be requested.
func (p Page[T]) HasMore() bool {
	return p.Cursor != ""
}

// Map converts page items keeping the cursor.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[U]{Items: items, Cursor: p.Cursor}
}

// Fetcher loads a single page.
type Fetcher[T any] func(ctx context.Context, params Params) (Page[T], error)

// Pages lazily walks every page starting at params, stopping after the first error.
func Pages[T any](ctx context.Context, params Params, fetch Fetcher[T]) iter.Seq2[Page[T], error] {
	return func(yield func(Page[T], error) bool) {
		for {
			page, err := fetch(ctx, params)
			if err != nil {
				yield(Page[T]{}, err)
				return
			}
			if !yield(page, nil) || !page.HasMore() {
				return
			}
			params.Cursor = page.Cursor
		}
	}
}
