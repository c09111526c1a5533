package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/go_pos/internal/cache"
	"github.com/fjod/go_pos/internal/catalog"
	"golang.org/x/sync/singleflight"
)

type CatalogHandler struct {
	store catalog.Store
	cache cache.CatalogCache
	sfg   singleflight.Group // prevents cache stampede on a cold listing
}

func NewCatalogHandler(store catalog.Store, listingCache cache.CatalogCache) *CatalogHandler {
	return &CatalogHandler{
		store: store,
		cache: listingCache,
	}
}

// List serves GET /api/v1/products?category=Dairy
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = catalog.CategoryAll
	}
	if category != catalog.CategoryAll && !category.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_category", "unknown category "+string(category))
		return
	}

	items, err := h.listing(r.Context(), category)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) listing(ctx context.Context, category catalog.Category) ([]catalog.Item, error) {
	// singleflight collapses concurrent misses for the same category
	v, err, _ := h.sfg.Do(string(category), func() (interface{}, error) {
		if h.cache != nil {
			items, errGet := h.cache.Get(ctx, category)
			if errGet == nil {
				return items, nil
			}
			if !errors.Is(errGet, cache.ErrCacheMiss) {
				log.Printf("cache get error: %v", errGet) // log cache error but continue
			}
		}

		items := make([]catalog.Item, 0)
		for item := range h.store.ListByCategory(category) {
			items = append(items, item)
		}

		if h.cache != nil {
			go func() {
				if errSet := h.cache.Set(context.Background(), category, items); errSet != nil {
					log.Printf("cache set error: %v", errSet)
				}
			}()
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Item), nil
}
