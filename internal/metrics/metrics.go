// Package metrics computes body and energy metrics from a user profile.
//
// Every function is pure. The Emotional Balance Index and the BMR offset for
// gender "other" are in-house heuristics, not clinical instruments.
package metrics

import (
	"math"

	"github.com/mindmeal/mindmeal-cli/internal/model"
)

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:        1.2,
	model.ActivityLightlyActive:    1.375,
	model.ActivityModeratelyActive: 1.55,
	model.ActivityVeryActive:       1.725,
	model.ActivityExtremelyActive:  1.9,
}

var activityBalance = map[model.ActivityLevel]float64{
	model.ActivitySedentary:        -10,
	model.ActivityLightlyActive:    0,
	model.ActivityModeratelyActive: 10,
	model.ActivityVeryActive:       15,
	model.ActivityExtremelyActive:  12,
}

var conditionBalance = map[model.MedicalCondition]float64{
	model.ConditionDepression:   -15,
	model.ConditionAnxiety:      -12,
	model.ConditionThyroid:      -5,
	model.ConditionDiabetes:     -5,
	model.ConditionHypertension: -3,
	model.ConditionPCOS:         -5,
	model.ConditionHeartDisease: -5,
	model.ConditionNone:         5,
}

const (
	calorieAdjustment = 500
	balanceBase       = 70
)

// BMI is weight(kg) / height(m)^2 rounded to one decimal. Height must be > 0.
func BMI(weight, height float64) float64 {
	m := height / 100
	return roundHalfUp(weight/(m*m)*10) / 10
}

func Category(bmi float64) model.BMICategory {
	switch {
	case bmi < 18.5:
		return model.BMIUnderweight
	case bmi < 25:
		return model.BMINormal
	case bmi < 30:
		return model.BMIOverweight
	default:
		return model.BMIObese
	}
}

// BMR uses Mifflin-St Jeor. Genders other than male and female take the
// midpoint offset of -78.
func BMR(weight, height float64, age int, gender model.Gender) int {
	base := 10*weight + 6.25*height - 5*float64(age)
	switch gender {
	case model.GenderMale:
		return int(roundHalfUp(base + 5))
	case model.GenderFemale:
		return int(roundHalfUp(base - 161))
	default:
		return int(roundHalfUp(base - 78))
	}
}

// TDEE scales bmr by the activity multiplier. Unknown levels use sedentary.
func TDEE(bmr int, level model.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[model.ActivitySedentary]
	}
	return int(roundHalfUp(float64(bmr) * mult))
}

// DailyCalorieGoal applies a 500 kcal deficit for weight loss, otherwise a
// 500 kcal surplus for weight gain or muscle building. Weight loss wins when
// both are selected.
func DailyCalorieGoal(tdee int, goals []model.Goal) int {
	switch {
	case hasGoal(goals, model.GoalWeightLoss):
		return tdee - calorieAdjustment
	case hasGoal(goals, model.GoalWeightGain), hasGoal(goals, model.GoalMuscleBuilding):
		return tdee + calorieAdjustment
	default:
		return tdee
	}
}

// EmotionalBalanceIndex is an additive 0-100 wellness heuristic.
func EmotionalBalanceIndex(p model.UserProfile) int {
	score := float64(balanceBase)
	score += activityBalance[p.ActivityLevel]
	for _, c := range p.MedicalConditions {
		score += conditionBalance[c]
	}
	if p.HasGoal(model.GoalImproveMentalHealth) {
		score += 5
	}
	if p.Age >= 25 && p.Age <= 45 {
		score += 5
	} else if p.Age > 60 {
		score += 3
	}
	if p.Height > 0 {
		switch Category(BMI(float64(p.Weight), float64(p.Height))) {
		case model.BMINormal:
			score += 5
		case model.BMIUnderweight, model.BMIObese:
			score -= 5
		}
	}
	return int(math.Max(0, math.Min(100, roundHalfUp(score))))
}

type macroSplit struct {
	protein, carbs, fat float64
}

// MacroTargets splits calories into grams using 4/4/9 kcal per gram. Each
// target is rounded on its own so the sum may drift from the total.
func MacroTargets(dailyCalories int, goals []model.Goal) model.MacroTargets {
	split := macroSplit{protein: 0.25, carbs: 0.45, fat: 0.30}
	switch {
	case hasGoal(goals, model.GoalMuscleBuilding), hasGoal(goals, model.GoalWeightGain):
		split = macroSplit{protein: 0.30, carbs: 0.45, fat: 0.25}
	case hasGoal(goals, model.GoalWeightLoss):
		split = macroSplit{protein: 0.30, carbs: 0.40, fat: 0.30}
	}
	cal := float64(dailyCalories)
	return model.MacroTargets{
		Protein: int(roundHalfUp(cal * split.protein / 4)),
		Carbs:   int(roundHalfUp(cal * split.carbs / 4)),
		Fat:     int(roundHalfUp(cal * split.fat / 9)),
	}
}

// All recomputes the full metric set. Nothing is cached.
func All(p model.UserProfile) model.HealthMetrics {
	if p.Height <= 0 || p.Weight <= 0 {
		return Fallback()
	}
	bmi := BMI(float64(p.Weight), float64(p.Height))
	bmr := BMR(float64(p.Weight), float64(p.Height), p.Age, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)
	goal := DailyCalorieGoal(tdee, p.Goals)
	return model.HealthMetrics{
		BMI:                   bmi,
		BMICategory:           Category(bmi),
		BMR:                   bmr,
		TDEE:                  tdee,
		DailyCalorieGoal:      goal,
		EmotionalBalanceIndex: EmotionalBalanceIndex(p),
		Macros:                MacroTargets(goal, p.Goals),
	}
}

// Fallback is served whenever no usable profile exists.
func Fallback() model.HealthMetrics {
	return model.HealthMetrics{
		BMI:                   22.0,
		BMICategory:           model.BMINormal,
		BMR:                   0,
		TDEE:                  2000,
		DailyCalorieGoal:      2000,
		EmotionalBalanceIndex: balanceBase,
		Macros:                model.MacroTargets{Protein: 100, Carbs: 250, Fat: 70},
	}
}

func hasGoal(goals []model.Goal, g model.Goal) bool {
	for _, goal := range goals {
		if goal == g {
			return true
		}
	}
	return false
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
