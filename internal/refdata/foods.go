// Package refdata holds the static tables the app ships with: the food
// database, onboarding option lists and canned chat replies.
package refdata

import (
	"strings"

	"github.com/mindmeal/mindmeal-cli/internal/model"
)

// AllFoods returns a copy of the food database in its fixed order.
func AllFoods() []model.FoodItem {
	return append([]model.FoodItem(nil), foods...)
}

func FoodByID(id string) (model.FoodItem, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return model.FoodItem{}, false
}

func FoodsByCategory(category model.FoodCategory) []model.FoodItem {
	out := make([]model.FoodItem, 0)
	for _, f := range foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// SearchFoods matches the English name case-insensitively and the localized
// name as an exact substring. An empty query returns every food.
func SearchFoods(query string) []model.FoodItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return AllFoods()
	}
	lower := strings.ToLower(query)
	out := make([]model.FoodItem, 0)
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), lower) || (f.NameHindi != "" && strings.Contains(f.NameHindi, query)) {
			out = append(out, f)
		}
	}
	return out
}
