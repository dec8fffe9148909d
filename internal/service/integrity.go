package service

import (
	"context"
	"encoding/json"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

type KeyCheck struct {
	Key     string `json:"key"`
	Present bool   `json:"present"`
	Valid   bool   `json:"valid"`
	Problem string `json:"problem,omitempty"`
	Removed bool   `json:"removed,omitempty"`
}

type DoctorReport struct {
	Checks      []KeyCheck `json:"checks"`
	CorruptKeys int        `json:"corrupt_keys"`
	FixedKeys   int        `json:"fixed_keys,omitempty"`
}

// keyShapes decodes each key into the type the app expects there.
var keyShapes = map[string]func() any{
	storage.KeyAuth:               func() any { return &model.Credentials{} },
	storage.KeyUser:               func() any { return &model.User{} },
	storage.KeyProfile:            func() any { return &model.UserProfile{} },
	storage.KeyFoodLogs:           func() any { return &[]model.FoodLog{} },
	storage.KeyOnboardingComplete: func() any { return new(bool) },
	storage.KeyChatHistory:        func() any { return &[]model.ChatMessage{} },
	storage.KeyWater:              func() any { return &model.WaterIntake{} },
}

// RunDoctor checks that every stored key decodes into its expected shape.
// With fix, corrupt keys are removed so they read as empty.
func RunDoctor(ctx context.Context, store storage.Store, fix bool) (DoctorReport, error) {
	var report DoctorReport
	for _, key := range storage.AllKeys {
		check := KeyCheck{Key: key}
		raw, ok, err := store.Get(ctx, key)
		if err != nil {
			return DoctorReport{}, apperrors.NewStorageError(err, "read "+key)
		}
		check.Present = ok
		if !ok {
			check.Valid = true
			report.Checks = append(report.Checks, check)
			continue
		}
		if err := json.Unmarshal(raw, keyShapes[key]()); err != nil {
			check.Problem = err.Error()
			report.CorruptKeys++
			if fix {
				if err := store.Remove(ctx, key); err != nil {
					return DoctorReport{}, apperrors.NewStorageError(err, "remove "+key)
				}
				check.Removed = true
				report.FixedKeys++
			}
		} else {
			check.Valid = true
		}
		report.Checks = append(report.Checks, check)
	}
	return report, nil
}
