package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/horeca-one/catalogd/internal/model"
	"github.com/horeca-one/catalogd/internal/service"
)

var errStoreDown = errors.New("store unavailable")

// mockStorage is an in-memory service.Storage that counts queries and can be
// told to fail specific operations.
type mockStorage struct {
	categories map[string]*model.Category
	products   []model.Product

	lookupCalls   int
	maxOrderCalls int
	createCalls   int

	failCreateCategory bool
	failCreateProduct  string // SKU whose write should fail; "" disables
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		categories: make(map[string]*model.Category),
	}
}

func (m *mockStorage) GetCategoryByLabel(_ context.Context, label string) (*model.Category, error) {
	m.lookupCalls++
	if cat, ok := m.categories[label]; ok {
		return cat, nil
	}
	return nil, nil
}

func (m *mockStorage) GetMaxCategoryOrder(_ context.Context) (int, bool, error) {
	m.maxOrderCalls++
	maxOrder := 0
	found := false
	for _, cat := range m.categories {
		if !found || cat.Order > maxOrder {
			maxOrder = cat.Order
			found = true
		}
	}
	return maxOrder, found, nil
}

func (m *mockStorage) CreateCategory(_ context.Context, label string, order int) (*model.Category, error) {
	m.createCalls++
	if m.failCreateCategory {
		return nil, errStoreDown
	}
	cat := &model.Category{
		ID:     fmt.Sprintf("cat-%d", len(m.categories)+1),
		Label:  label,
		Status: model.StatusShow,
		Order:  order,
	}
	m.categories[label] = cat
	return cat, nil
}

func (m *mockStorage) ListCategories(_ context.Context) ([]model.Category, error) {
	var cats []model.Category
	for _, cat := range m.categories {
		cats = append(cats, *cat)
	}
	return cats, nil
}

func (m *mockStorage) ListProductKeys(_ context.Context) ([]model.ProductKey, error) {
	keys := make([]model.ProductKey, 0, len(m.products))
	for _, p := range m.products {
		keys = append(keys, model.ProductKey{SKU: p.SKU, Name: p.Name})
	}
	return keys, nil
}

func (m *mockStorage) ListProducts(_ context.Context, _ service.ProductFilter) ([]model.Product, error) {
	return m.products, nil
}

func (m *mockStorage) CreateProduct(_ context.Context, product *model.Product) (string, error) {
	if m.failCreateProduct != "" && product.SKU == m.failCreateProduct {
		return "", errStoreDown
	}
	product.ID = fmt.Sprintf("prod-%d", len(m.products)+1)
	m.products = append(m.products, *product)
	return product.ID, nil
}

func (m *mockStorage) CountProducts(_ context.Context, _ service.ProductFilter) (int, error) {
	return len(m.products), nil
}

func (m *mockStorage) DeleteProductsWithSKU(_ context.Context) (int64, error) {
	var kept []model.Product
	var deleted int64
	for _, p := range m.products {
		if p.SKU == "" {
			kept = append(kept, p)
		} else {
			deleted++
		}
	}
	m.products = kept
	return deleted, nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }
func (m *mockStorage) Close() error                    { return nil }
