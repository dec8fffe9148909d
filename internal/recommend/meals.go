package recommend

import (
	"sort"

	"github.com/mindmeal/mindmeal-cli/internal/model"
)

const maxMealSuggestions = 10

// mealCategories restricts which food categories suit a meal. Meals without
// an entry accept every category.
var mealCategories = map[model.MealType][]model.FoodCategory{
	model.MealBreakfast: {model.CategoryBreakfast, model.CategoryFruit, model.CategoryDairy, model.CategoryBeverage},
	model.MealSnack:     {model.CategorySnack, model.CategoryFruit, model.CategoryBeverage},
}

// MealSuggestions filters candidates for meal and ranks them for p.
func MealSuggestions(p model.UserProfile, meal model.MealType, candidates []model.FoodItem) []model.FoodItem {
	weightLoss := p.HasGoal(model.GoalWeightLoss)
	weightGain := p.HasGoal(model.GoalWeightGain)
	proteinFirst := weightLoss || p.HasGoal(model.GoalMuscleBuilding)
	diabetic := p.HasCondition(model.ConditionDiabetes)

	filtered := make([]model.FoodItem, 0, len(candidates))
	for _, f := range candidates {
		if !fitsMeal(meal, f.Category) {
			continue
		}
		if weightLoss && f.Calories > 400 {
			continue
		}
		if diabetic && f.Carbs > 50 {
			continue
		}
		filtered = append(filtered, f)
	}

	score := func(f model.FoodItem) float64 {
		s := 0.0
		if proteinFirst {
			s += f.Protein * 2
		}
		if weightLoss {
			s -= f.Calories / 100
		} else if weightGain {
			s += f.Calories / 100
		}
		return s
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return score(filtered[i]) > score(filtered[j])
	})
	if len(filtered) > maxMealSuggestions {
		filtered = filtered[:maxMealSuggestions]
	}
	return filtered
}

func fitsMeal(meal model.MealType, category model.FoodCategory) bool {
	allowed, ok := mealCategories[meal]
	if !ok {
		return true
	}
	for _, c := range allowed {
		if c == category {
			return true
		}
	}
	return false
}
