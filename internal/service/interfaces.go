// Package service defines the interfaces the catalog pipeline consumes.
package service

import (
	"context"

	"github.com/horeca-one/catalogd/internal/model"
)

// ProductFilter narrows product queries.
type ProductFilter struct {
	Status model.Status
	HasSKU *bool
	Limit  int
}

// Storage is the contract for the catalog store. Lookups that find nothing
// return (nil, nil), not an error.
type Storage interface {
	// Category operations
	GetCategoryByLabel(ctx context.Context, label string) (*model.Category, error)
	GetMaxCategoryOrder(ctx context.Context) (int, bool, error)
	CreateCategory(ctx context.Context, label string, order int) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	// Product operations
	ListProductKeys(ctx context.Context) ([]model.ProductKey, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (string, error)
	CountProducts(ctx context.Context, filter ProductFilter) (int, error)
	DeleteProductsWithSKU(ctx context.Context) (int64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
