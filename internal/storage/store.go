// Package storage persists JSON documents under fixed string keys. Backends
// are interchangeable; the session layer only sees Store.
package storage

import (
	"context"
	"fmt"

	"github.com/mindmeal/mindmeal-cli/internal/app"
	"github.com/mindmeal/mindmeal-cli/internal/config"
)

const (
	KeyAuth               = "mindmeal_auth"
	KeyUser               = "mindmeal_user"
	KeyProfile            = "mindmeal_profile"
	KeyFoodLogs           = "mindmeal_food_logs"
	KeyOnboardingComplete = "mindmeal_onboarding_complete"
	KeyChatHistory        = "mindmeal_chat_history"
	KeyWater              = "mindmeal_water"
)

// AllKeys lists every key the app writes, in logout order.
var AllKeys = []string{
	KeyAuth,
	KeyUser,
	KeyProfile,
	KeyFoodLogs,
	KeyOnboardingComplete,
	KeyChatHistory,
	KeyWater,
}

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "", "sqlite":
		if err := app.EnsureDBDir(cfg.SQLitePath); err != nil {
			return nil, err
		}
		return OpenSQLite(ctx, cfg.SQLitePath)
	case "redis":
		return OpenRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case "postgres":
		return OpenPostgres(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
