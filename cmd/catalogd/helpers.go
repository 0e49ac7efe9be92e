package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/horeca-one/catalogd/internal/common"
	"github.com/horeca-one/catalogd/internal/config"
	"github.com/horeca-one/catalogd/internal/service"
	"github.com/horeca-one/catalogd/internal/storage"
)

// initStorage initializes the catalog store with proper path expansion.
// Failure here is fatal to the whole command; per-row store errors during an
// import are not.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open catalog store at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, common.NewUserError("failed to run migrations", err)
	}

	return store, nil
}
