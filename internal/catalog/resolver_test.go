package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-one/catalogd/internal/model"
)

func TestResolveCreatesMissingCategory(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	resolver := NewCategoryResolver(store)

	id, err := resolver.Resolve(ctx, "Dairy")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cat := store.categories["Dairy"]
	require.NotNil(t, cat)
	assert.Equal(t, 0, cat.Order, "first category gets order 0")
	assert.Equal(t, model.StatusShow, cat.Status)
	assert.Equal(t, 1, resolver.Created())
}

func TestResolveAssignsNextOrder(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	store.categories["Existing"] = &model.Category{ID: "cat-0", Label: "Existing", Order: 3}

	resolver := NewCategoryResolver(store)

	_, err := resolver.Resolve(ctx, "Chinese")
	require.NoError(t, err)
	assert.Equal(t, 4, store.categories["Chinese"].Order, "order continues from existing max")

	_, err = resolver.Resolve(ctx, "Beverages")
	require.NoError(t, err)
	assert.Equal(t, 5, store.categories["Beverages"].Order)
}

func TestResolveReusesExistingCategory(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	store.categories["Dairy"] = &model.Category{ID: "cat-7", Label: "Dairy", Order: 2}

	resolver := NewCategoryResolver(store)

	id, err := resolver.Resolve(ctx, "Dairy")
	require.NoError(t, err)
	assert.Equal(t, "cat-7", id)
	assert.Zero(t, store.createCalls)
	assert.Zero(t, resolver.Created())
}

func TestResolveMemoizesPerRun(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	resolver := NewCategoryResolver(store)

	first, err := resolver.Resolve(ctx, "Sachet")
	require.NoError(t, err)

	second, err := resolver.Resolve(ctx, "Sachet")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.lookupCalls, "second resolution must not query the store")
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, 1, resolver.Touched())
}

func TestResolveCreateFailure(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	store.failCreateCategory = true

	resolver := NewCategoryResolver(store)

	_, err := resolver.Resolve(ctx, "Dairy")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Zero(t, resolver.Touched(), "failed resolutions are not cached")
}
