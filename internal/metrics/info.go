package metrics

import "github.com/mindmeal/mindmeal-cli/internal/model"

type CategoryInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var categoryInfo = map[model.BMICategory]CategoryInfo{
	model.BMIUnderweight: {Label: "Underweight", Description: "Below healthy weight range"},
	model.BMINormal:      {Label: "Normal", Description: "Healthy weight range"},
	model.BMIOverweight:  {Label: "Overweight", Description: "Above healthy weight range"},
	model.BMIObese:       {Label: "Obese", Description: "Significantly above healthy range"},
}

func BMICategoryInfo(c model.BMICategory) CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{Label: string(c)}
}

type Diet struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// DietType labels a daily calorie goal.
func DietType(dailyCalorieGoal int) Diet {
	switch {
	case dailyCalorieGoal <= 1400:
		return Diet{Type: "Weight Loss", Description: "Calorie-deficit diet for healthy weight reduction"}
	case dailyCalorieGoal >= 2200:
		return Diet{Type: "Weight Gain", Description: "Calorie-surplus diet for healthy weight increase"}
	default:
		return Diet{Type: "Maintenance", Description: "Balanced diet to maintain current weight"}
	}
}
