package service

import (
	"math"

	"github.com/mindmeal/mindmeal-cli/internal/model"
)

type TodayStatus struct {
	Stats             model.DailyStats   `json:"stats"`
	RemainingCalories float64            `json:"remainingCalories"`
	ProgressPercent   float64            `json:"progressPercent"`
	Macros            model.MacroTargets `json:"macroTargets"`
	WaterGoal         int                `json:"waterGoal"`
	HasProfile        bool               `json:"hasProfile"`
}

// TodaySummary combines today's intake with the profile's calorie goal. The
// fallback goal applies before onboarding.
func (a *App) TodaySummary() TodayStatus {
	m := a.Session.Metrics()
	_, hasProfile := a.Session.Profile()

	stats := a.FoodLogs.TodayStats()
	stats.CalorieGoal = m.DailyCalorieGoal
	stats.Water = a.Water.Glasses()

	status := TodayStatus{
		Stats:             stats,
		RemainingCalories: math.Max(0, float64(stats.CalorieGoal)-stats.CaloriesConsumed),
		Macros:            m.Macros,
		WaterGoal:         a.Water.Goal(),
		HasProfile:        hasProfile,
	}
	if stats.CalorieGoal > 0 {
		status.ProgressPercent = math.Min(100, stats.CaloriesConsumed/float64(stats.CalorieGoal)*100)
	}
	return status
}
