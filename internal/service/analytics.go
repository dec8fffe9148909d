package service

import (
	"fmt"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/recommend"
)

const MaxHistoryDays = 365

// CalorieHistory returns one entry per day for the trailing window, oldest
// first and ending today. Days without logs report zero.
func (a *App) CalorieHistory(days int) ([]model.DayCalories, error) {
	if days <= 0 || days > MaxHistoryDays {
		return nil, fmt.Errorf("days must be between 1 and %d", MaxHistoryDays)
	}
	today := beginningOfDay(a.now())
	out := make([]model.DayCalories, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(dateLayout)
		out = append(out, model.DayCalories{
			Day:      day.Weekday().String()[:3],
			Date:     date,
			Calories: a.FoodLogs.Stats(date).CaloriesConsumed,
		})
	}
	return out, nil
}

// WeeklyCalories is the seven day series used by exports.
func (a *App) WeeklyCalories() []model.DayCalories {
	out, _ := a.CalorieHistory(7)
	return out
}

// Confidence scores the current recommendations against profile
// completeness and logged history.
func (a *App) Confidence() int {
	p, ok := a.Session.Profile()
	if !ok {
		p = model.UserProfile{}
	}
	return recommend.ConfidenceScore(p, a.FoodLogs.DaysWithData())
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
