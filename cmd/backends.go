package main

import (
	"context"
	"fmt"
	"io"

	"propertyHub/internal/catalog"
	"propertyHub/internal/config"
	"propertyHub/internal/storage"
	"propertyHub/internal/storage/memory"
	"propertyHub/internal/storage/postgres"
	"propertyHub/internal/storage/redis"
	"propertyHub/internal/storage/sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSessionStore returns the key-value store the session gate persists to.
func openSessionStore(ctx context.Context, cfg config.SessionConfig) (storage.KeyValue, io.Closer, error) {
	switch cfg.Backend {
	case config.SessionBackendSqlite:
		store, err := sqlite.New(ctx, cfg.SqlitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, store, nil
	case config.SessionBackendRedis:
		store, err := redis.New(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, store, nil
	default:
		return memory.New(), nopCloser{}, nil
	}
}

func openCatalog(ctx context.Context, cfg config.CatalogConfig) (*catalog.Catalog, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		return catalog.Load(ctx, catalog.FileSource{Path: cfg.File})
	case config.CatalogSourcePostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres catalog: %w", err)
		}
		defer db.Close()

		return catalog.Load(ctx, db)
	default:
		return catalog.Load(ctx, catalog.EmbeddedSource{})
	}
}
