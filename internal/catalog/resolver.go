package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/horeca-one/catalogd/internal/service"
)

// CategoryResolver maps category labels to category ids, creating missing
// categories on the fly. Resolutions are memoized for the lifetime of one
// import run; the cache is never shared across runs.
type CategoryResolver struct {
	storage service.Storage
	cache   map[string]string
	created int
}

// NewCategoryResolver creates a resolver backed by the given store.
func NewCategoryResolver(storage service.Storage) *CategoryResolver {
	return &CategoryResolver{
		storage: storage,
		cache:   make(map[string]string),
	}
}

// Resolve returns the category id for a label. On first encounter it looks
// the label up in the store; if absent it creates the category with the next
// display order and persists it immediately, so later readers in the same
// run see it. Subsequent calls for the same label hit the cache and issue no
// store queries.
func (r *CategoryResolver) Resolve(ctx context.Context, label string) (string, error) {
	if id, ok := r.cache[label]; ok {
		return id, nil
	}

	cat, err := r.storage.GetCategoryByLabel(ctx, label)
	if err != nil {
		return "", fmt.Errorf("failed to look up category %q: %w", label, err)
	}

	if cat == nil {
		maxOrder, found, err := r.storage.GetMaxCategoryOrder(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to read max category order: %w", err)
		}
		order := 0
		if found {
			order = maxOrder + 1
		}

		cat, err = r.storage.CreateCategory(ctx, label, order)
		if err != nil {
			return "", fmt.Errorf("failed to create category %q: %w", label, err)
		}
		r.created++
	} else {
		slog.Debug("using existing category", "label", label, "id", cat.ID)
	}

	r.cache[label] = cat.ID
	return cat.ID, nil
}

// Touched reports how many distinct labels this run resolved.
func (r *CategoryResolver) Touched() int {
	return len(r.cache)
}

// Created reports how many categories this run created.
func (r *CategoryResolver) Created() int {
	return r.created
}
