package service

import (
	"context"
	"sync"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

const DefaultWaterGoal = 8

// WaterTracker counts glasses for the current day. A stored count from an
// earlier day reads as zero.
type WaterTracker struct {
	mu     sync.Mutex
	store  storage.Store
	now    func() time.Time
	goal   int
	intake model.WaterIntake
}

func loadWater(ctx context.Context, store storage.Store, now func() time.Time, goal int) *WaterTracker {
	if goal <= 0 {
		goal = DefaultWaterGoal
	}
	w := &WaterTracker{store: store, now: now, goal: goal}
	var intake model.WaterIntake
	if storage.LoadJSON(ctx, store, storage.KeyWater, &intake) {
		w.intake = intake
	}
	return w
}

func (w *WaterTracker) Goal() int { return w.goal }

func (w *WaterTracker) Glasses() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentLocked()
}

func (w *WaterTracker) Add(ctx context.Context) (int, error) {
	return w.adjust(ctx, 1)
}

func (w *WaterTracker) Remove(ctx context.Context) (int, error) {
	return w.adjust(ctx, -1)
}

// adjust moves the count by delta, clamped to [0, goal].
func (w *WaterTracker) adjust(ctx context.Context, delta int) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := min(w.goal, max(0, w.currentLocked()+delta))
	intake := model.WaterIntake{Date: w.now().Format(dateLayout), Glasses: next}
	if err := storage.SaveJSON(ctx, w.store, storage.KeyWater, intake); err != nil {
		return w.currentLocked(), err
	}
	w.intake = intake
	return next, nil
}

func (w *WaterTracker) currentLocked() int {
	if w.intake.Date != w.now().Format(dateLayout) {
		return 0
	}
	return w.intake.Glasses
}

func (w *WaterTracker) reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.intake = model.WaterIntake{}
}
