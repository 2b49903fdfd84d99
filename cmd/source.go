package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jjenkins/clients/internal/config"
	"github.com/jjenkins/clients/internal/service"
	"github.com/jjenkins/clients/internal/store"
	"github.com/jjenkins/clients/internal/store/seed"
)

// openSource returns the configured record source and a function releasing it
func openSource(ctx context.Context, cfg *config.Config) (store.RecordSource, func(), error) {
	if cfg.Store.Driver == config.DriverMemory {
		result, err := service.NewParser().Parse(seed.Clients)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load built-in clients: %w", err)
		}
		return store.NewMemoryStore(result.ClientRecords()), func() {}, nil
	}

	db, clientStore, err := openClientStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return clientStore, func() { db.Close() }, nil
}

func openClientStore(ctx context.Context, cfg *config.Config) (*sql.DB, *store.ClientStore, error) {
	dialect, err := store.DialectFor(cfg.Store.Driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewDB(ctx, dialect, cfg.Store.DSN)
	if err != nil {
		return nil, nil, err
	}

	clientStore := store.NewClientStore(db, dialect)
	if err := clientStore.CreateSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, clientStore, nil
}
