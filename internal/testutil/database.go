// Package testutil provides shared helpers for tests that need a real
// catalog store.
package testutil

import (
	"context"
	"testing"

	"github.com/horeca-one/catalogd/internal/service"
	"github.com/horeca-one/catalogd/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite store and registers its
// cleanup with the test.
func SetupTestDB(t *testing.T) service.Storage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedCategories creates the given labels in order, starting from the
// current max display order.
func SeedCategories(t *testing.T, store service.Storage, labels ...string) {
	t.Helper()

	ctx := context.Background()
	for _, label := range labels {
		maxOrder, found, err := store.GetMaxCategoryOrder(ctx)
		if err != nil {
			t.Fatalf("failed to read max category order: %v", err)
		}
		order := 0
		if found {
			order = maxOrder + 1
		}
		if _, err := store.CreateCategory(ctx, label, order); err != nil {
			t.Fatalf("failed to seed category %q: %v", label, err)
		}
	}
}
