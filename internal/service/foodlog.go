package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

const (
	dateLayout  = "2006-01-02"
	maxServings = 20
)

// FoodLogStore is the append-only meal log. Order is insertion order and
// every mutation is persisted before it returns.
type FoodLogStore struct {
	mu    sync.RWMutex
	store storage.Store
	now   func() time.Time
	logs  []model.FoodLog
}

func loadFoodLogs(ctx context.Context, store storage.Store, now func() time.Time) *FoodLogStore {
	f := &FoodLogStore{store: store, now: now}
	var logs []model.FoodLog
	if storage.LoadJSON(ctx, store, storage.KeyFoodLogs, &logs) {
		f.logs = logs
	}
	return f
}

// Today is the current local calendar day.
func (f *FoodLogStore) Today() string {
	return f.now().Format(dateLayout)
}

// Add logs servings of item against meal for today. Servings default to 1
// and must be a multiple of 0.5 between 0.5 and maxServings.
func (f *FoodLogStore) Add(ctx context.Context, item model.FoodItem, meal model.MealType, servings float64) (model.FoodLog, error) {
	if servings == 0 {
		servings = 1
	}
	var problems []apperrors.FieldError
	if !validMealType(meal) {
		problems = append(problems, apperrors.FieldError{Field: "mealType", Message: "must be one of: breakfast, lunch, snack, dinner"})
	}
	if servings < 0.5 || servings > maxServings || math.Mod(servings*2, 1) != 0 {
		problems = append(problems, apperrors.FieldError{Field: "servings", Message: "must be a multiple of 0.5 between 0.5 and 20"})
	}
	if item.ID == "" {
		problems = append(problems, apperrors.FieldError{Field: "foodItem", Message: "is required"})
	}
	if len(problems) > 0 {
		return model.FoodLog{}, apperrors.NewValidationError(problems)
	}

	now := f.now()
	entry := model.FoodLog{
		ID:        uuid.NewString(),
		FoodItem:  item,
		MealType:  meal,
		Servings:  servings,
		Timestamp: now,
		Date:      now.Format(dateLayout),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	next := append(append(make([]model.FoodLog, 0, len(f.logs)+1), f.logs...), entry)
	if err := f.persist(ctx, next); err != nil {
		return model.FoodLog{}, err
	}
	return entry, nil
}

// Remove deletes the log with id. Unknown ids are a no-op.
func (f *FoodLogStore) Remove(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := make([]model.FoodLog, 0, len(f.logs))
	for _, l := range f.logs {
		if l.ID != id {
			next = append(next, l)
		}
	}
	if len(next) == len(f.logs) {
		return false, nil
	}
	if err := f.persist(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// ClearToday removes every entry dated today and reports how many went.
func (f *FoodLogStore) ClearToday(ctx context.Context) (int, error) {
	today := f.Today()
	f.mu.Lock()
	defer f.mu.Unlock()
	next := make([]model.FoodLog, 0, len(f.logs))
	for _, l := range f.logs {
		if l.Date != today {
			next = append(next, l)
		}
	}
	removed := len(f.logs) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := f.persist(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// Merge appends logs whose ids are not already present.
func (f *FoodLogStore) Merge(ctx context.Context, logs []model.FoodLog) (inserted, skipped int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool, len(f.logs))
	for _, l := range f.logs {
		seen[l.ID] = true
	}
	next := append(make([]model.FoodLog, 0, len(f.logs)+len(logs)), f.logs...)
	for _, l := range logs {
		if l.ID == "" || seen[l.ID] {
			skipped++
			continue
		}
		seen[l.ID] = true
		next = append(next, l)
		inserted++
	}
	if inserted == 0 {
		return 0, skipped, nil
	}
	if err := f.persist(ctx, next); err != nil {
		return 0, 0, err
	}
	return inserted, skipped, nil
}

func (f *FoodLogStore) All() []model.FoodLog {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]model.FoodLog(nil), f.logs...)
}

func (f *FoodLogStore) ByDate(date string) []model.FoodLog {
	return f.filter(func(l model.FoodLog) bool { return l.Date == date })
}

// ByMealType filters by meal on date, or today when date is empty.
func (f *FoodLogStore) ByMealType(meal model.MealType, date string) []model.FoodLog {
	if date == "" {
		date = f.Today()
	}
	return f.filter(func(l model.FoodLog) bool { return l.MealType == meal && l.Date == date })
}

// Stats sums calories and macros for date, weighting each entry by its
// servings. CalorieGoal and Water are left for the caller.
func (f *FoodLogStore) Stats(date string) model.DailyStats {
	stats := model.DailyStats{Date: date}
	for _, l := range f.ByDate(date) {
		stats.CaloriesConsumed += l.FoodItem.Calories * l.Servings
		stats.Protein += l.FoodItem.Protein * l.Servings
		stats.Carbs += l.FoodItem.Carbs * l.Servings
		stats.Fat += l.FoodItem.Fat * l.Servings
	}
	return stats
}

func (f *FoodLogStore) TodayStats() model.DailyStats {
	return f.Stats(f.Today())
}

// DaysWithData counts distinct days that have at least one entry.
func (f *FoodLogStore) DaysWithData() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	days := map[string]bool{}
	for _, l := range f.logs {
		days[l.Date] = true
	}
	return len(days)
}

func (f *FoodLogStore) filter(keep func(model.FoodLog) bool) []model.FoodLog {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]model.FoodLog, 0)
	for _, l := range f.logs {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// persist writes next and only then swaps it in. Callers hold f.mu.
func (f *FoodLogStore) persist(ctx context.Context, next []model.FoodLog) error {
	if err := storage.SaveJSON(ctx, f.store, storage.KeyFoodLogs, next); err != nil {
		return err
	}
	f.logs = next
	return nil
}

func (f *FoodLogStore) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = nil
}

func validMealType(meal model.MealType) bool {
	for _, m := range model.MealTypes {
		if m == meal {
			return true
		}
	}
	return false
}
