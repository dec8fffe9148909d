package storage

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
)

// LoadJSON decodes key into out. Missing keys, read failures and corrupt
// values all report false; failures are logged and never returned.
func LoadJSON(ctx context.Context, s Store, key string, out any) bool {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		logger.Warn("storage read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("stored value is not valid json", "key", key, "error", err)
		return false
	}
	return true
}

func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("encode %s: %w", key, err))
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return apperrors.NewStorageError(err, "write "+key)
	}
	return nil
}

// RemoveAll deletes every key, continuing past failures. The first error is
// returned.
func RemoveAll(ctx context.Context, s Store, keys []string) error {
	var first error
	for _, k := range keys {
		if err := s.Remove(ctx, k); err != nil {
			logger.Warn("storage remove failed", "key", k, "error", err)
			if first == nil {
				first = apperrors.NewStorageError(err, "remove "+k)
			}
		}
	}
	return first
}
