package service_test

import (
	"context"
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

func TestDoctorDetectsAndRemovesCorruptKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	app, _ := newTestApp(t, store)
	signUp(t, app)
	if err := store.Set(ctx, storage.KeyFoodLogs, []byte(`{"not":"a list"}`)); err != nil {
		t.Fatalf("seed corrupt logs: %v", err)
	}
	if err := store.Set(ctx, storage.KeyWater, []byte(`nope`)); err != nil {
		t.Fatalf("seed corrupt water: %v", err)
	}

	report, err := service.RunDoctor(ctx, store, false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.CorruptKeys != 2 || report.FixedKeys != 0 {
		t.Fatalf("expected 2 corrupt keys unfixed, got %+v", report)
	}
	if len(report.Checks) != len(storage.AllKeys) {
		t.Fatalf("expected one check per key, got %d", len(report.Checks))
	}

	report, err = service.RunDoctor(ctx, store, true)
	if err != nil {
		t.Fatalf("doctor fix: %v", err)
	}
	if report.FixedKeys != 2 {
		t.Fatalf("expected 2 fixed keys, got %+v", report)
	}
	if _, ok, _ := store.Get(ctx, storage.KeyFoodLogs); ok {
		t.Fatalf("expected corrupt food logs removed")
	}
	if _, ok, _ := store.Get(ctx, storage.KeyUser); !ok {
		t.Fatalf("expected valid user record kept")
	}

	report, err = service.RunDoctor(ctx, store, false)
	if err != nil || report.CorruptKeys != 0 {
		t.Fatalf("expected clean store after fix, got %+v err=%v", report, err)
	}
}
