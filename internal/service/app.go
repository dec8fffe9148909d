// Package service owns MindMeal's mutable state: the session, the food log,
// the water counter and the chat transcript, all backed by a storage.Store.
package service

import (
	"context"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/chat"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

type Options struct {
	// Now overrides the clock; dates are taken in its location.
	Now              func() time.Time
	WaterGoal        int
	ChatHistoryLimit int
	Responder        *chat.Responder
}

type App struct {
	store storage.Store
	now   func() time.Time

	Session  *Session
	FoodLogs *FoodLogStore
	Water    *WaterTracker
	Chat     *ChatService
}

// New loads all state from store once. Unreadable keys start empty.
func New(ctx context.Context, store storage.Store, opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	responder := opts.Responder
	if responder == nil {
		responder = chat.NewResponder(0)
	}
	return &App{
		store:    store,
		now:      now,
		Session:  loadSession(ctx, store, now),
		FoodLogs: loadFoodLogs(ctx, store, now),
		Water:    loadWater(ctx, store, now, opts.WaterGoal),
		Chat:     loadChat(ctx, store, now, responder, opts.ChatHistoryLimit),
	}
}

func (a *App) Store() storage.Store { return a.store }

// Logout removes every persisted key and resets in-memory state.
func (a *App) Logout(ctx context.Context) error {
	err := storage.RemoveAll(ctx, a.store, storage.AllKeys)
	a.Session.clear()
	a.FoodLogs.reset()
	a.Water.reset()
	a.Chat.reset()
	logger.Info("logged out")
	return err
}
