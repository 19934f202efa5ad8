package kv

import (
	"context"
	"fmt"
	"log/slog"

	"mealplanner/internal/config"
)

// MakeStore picks a backend from configuration.
func MakeStore(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		slog.InfoContext(ctx, "using file store", "dir", cfg.Dir)
		return NewFileStore(cfg.Dir), nil
	case "memory":
		slog.InfoContext(ctx, "using in-memory store")
		return NewInMemoryStore(), nil
	case "sqlite":
		slog.InfoContext(ctx, "using sqlite store", "path", cfg.SQLitePath)
		return NewSQLiteStore(ctx, cfg.SQLitePath)
	case "redis":
		slog.InfoContext(ctx, "using redis store")
		return NewRedisStore(ctx, cfg.RedisURL, "mealplanner:")
	case "azblob":
		if cfg.Azure.AccountName == "" {
			return nil, fmt.Errorf("AZURE_STORAGE_ACCOUNT_NAME could not be found")
		}
		if cfg.Azure.AccountKey == "" {
			return nil, fmt.Errorf("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY could not be found")
		}
		slog.InfoContext(ctx, "using Azure Blob Storage", "container", cfg.Azure.Container)
		return NewBlobStore(cfg.Azure.AccountName, cfg.Azure.AccountKey, cfg.Azure.Container)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
