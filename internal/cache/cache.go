package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_pos/internal/catalog"
)

// CatalogCache caches category listings for the HTTP layer.
type CatalogCache interface {
	Get(ctx context.Context, category catalog.Category) ([]catalog.Item, error)
	Set(ctx context.Context, category catalog.Category, items []catalog.Item) error
	Delete(ctx context.Context, category catalog.Category) error
}

var ErrCacheMiss = errors.New("cache miss")
