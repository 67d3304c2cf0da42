package main

import (
	"context"
	"fmt"

	mem "livestock-records/internal/adapters/storage/memory"
	pg "livestock-records/internal/adapters/storage/postgres"
	"livestock-records/internal/adapters/storage/sqlite"
	"livestock-records/internal/adapters/storage/sqlstore"
	"livestock-records/internal/config"
	"livestock-records/internal/router"
)

type store interface {
	router.Store
	Close() error
}

// openSQL abre el store SQL del driver configurado.
func openSQL(cfg config.Config) (*sqlstore.Store, error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		return pg.NewStore(cfg.Store.DSN)
	case config.DriverSQLite:
		return sqlite.NewStore(cfg.Store.SQLitePath)
	}
	return nil, fmt.Errorf("driver %s has no SQL schema", cfg.Driver())
}

// openStore construye el Entity Store una sola vez al arrancar; el que llama lo cierra.
func openStore(ctx context.Context, cfg config.Config) (store, error) {
	if cfg.Driver() == config.DriverMemory {
		return mem.NewStore(), nil
	}

	s, err := openSQL(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver(), err)
	}
	if cfg.Store.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}
