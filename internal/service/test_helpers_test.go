package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/chat"
	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := storage.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "mindmeal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestApp(t *testing.T, store storage.Store) (*service.App, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 11, 9, 30, 0, 0, time.Local)}
	app := service.New(context.Background(), store, service.Options{
		Now:       clock.Now,
		WaterGoal: 8,
		Responder: chat.NewResponder(7),
	})
	return app, clock
}

func signUp(t *testing.T, app *service.App) {
	t.Helper()
	if _, err := app.Session.Signup(context.Background(), service.SignupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
