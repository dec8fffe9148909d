package recommend

import (
	"sort"

	"github.com/mindmeal/mindmeal-cli/internal/model"
)

type recommendationRule struct {
	match   func(p model.UserProfile) bool
	records []model.Recommendation
}

// recommendationRules are independent; every matching rule contributes.
var recommendationRules = []recommendationRule{
	{
		match: func(p model.UserProfile) bool { return p.HasGoal(model.GoalWeightLoss) },
		records: []model.Recommendation{
			{ID: "food-1", Type: model.RecommendationFood, Title: "High-Protein Breakfast", Description: "Start your day with eggs, paneer, or dal chilla to boost metabolism and reduce cravings.", Priority: model.PriorityHigh, RelevanceScore: 0.95},
			{ID: "food-2", Type: model.RecommendationFood, Title: "Fiber-Rich Meals", Description: "Include more vegetables, whole grains, and salads to feel fuller with fewer calories.", Priority: model.PriorityHigh, RelevanceScore: 0.90},
		},
	},
	{
		match: func(p model.UserProfile) bool {
			return p.HasGoal(model.GoalWeightGain) || p.HasGoal(model.GoalMuscleBuilding)
		},
		records: []model.Recommendation{
			{ID: "food-3", Type: model.RecommendationFood, Title: "Calorie-Dense Healthy Foods", Description: "Add nuts, ghee, bananas, and whole milk to increase healthy calorie intake.", Priority: model.PriorityHigh, RelevanceScore: 0.92},
			{ID: "food-4", Type: model.RecommendationFood, Title: "Post-Workout Nutrition", Description: "Consume protein within 30 minutes of exercise for muscle recovery.", Priority: model.PriorityMedium, RelevanceScore: 0.85},
		},
	},
	{
		match: wantsMentalSupport,
		records: []model.Recommendation{
			{ID: "food-5", Type: model.RecommendationFood, Title: "Mood-Boosting Foods", Description: "Include omega-3 rich foods like walnuts, flaxseeds, and fatty fish to support brain health.", Priority: model.PriorityHigh, RelevanceScore: 0.93},
			{ID: "food-6", Type: model.RecommendationFood, Title: "Magnesium-Rich Foods", Description: "Dark chocolate, bananas, and spinach can help reduce anxiety symptoms.", Priority: model.PriorityMedium, RelevanceScore: 0.82},
		},
	},
	{
		match: func(p model.UserProfile) bool { return p.ActivityLevel == model.ActivitySedentary },
		records: []model.Recommendation{
			{ID: "exercise-1", Type: model.RecommendationExercise, Title: "Start with Daily Walks", Description: "15-20 minute walks after meals can improve digestion and boost mood.", Priority: model.PriorityHigh, RelevanceScore: 0.94},
		},
	},
	{
		match: func(p model.UserProfile) bool { return p.ActivityLevel == model.ActivityLightlyActive },
		records: []model.Recommendation{
			{ID: "exercise-2", Type: model.RecommendationExercise, Title: "Add Strength Training", Description: "2-3 days of bodyweight exercises can increase metabolism and energy levels.", Priority: model.PriorityMedium, RelevanceScore: 0.86},
		},
	},
	{
		match: func(p model.UserProfile) bool { return p.HasCondition(model.ConditionDiabetes) },
		records: []model.Recommendation{
			{ID: "health-1", Type: model.RecommendationFood, Title: "Low Glycemic Index Foods", Description: "Choose whole grains, legumes, and non-starchy vegetables to maintain stable blood sugar.", Priority: model.PriorityHigh, RelevanceScore: 0.96},
		},
	},
	{
		match: func(p model.UserProfile) bool { return p.HasCondition(model.ConditionHypertension) },
		records: []model.Recommendation{
			{ID: "health-2", Type: model.RecommendationFood, Title: "Reduce Sodium Intake", Description: "Limit processed foods and use herbs instead of salt for flavoring.", Priority: model.PriorityHigh, RelevanceScore: 0.95},
		},
	},
	{
		match: func(model.UserProfile) bool { return true },
		records: []model.Recommendation{
			{ID: "mental-1", Type: model.RecommendationMentalHealth, Title: "Mindful Eating Practice", Description: "Take 5 deep breaths before meals and eat without distractions for better digestion.", Priority: model.PriorityMedium, RelevanceScore: 0.80},
		},
	},
}

// Recommendations collects the records of every matching rule, sorted by
// relevance descending. Ties keep rule order.
func Recommendations(p model.UserProfile) []model.Recommendation {
	out := make([]model.Recommendation, 0, 8)
	for _, rule := range recommendationRules {
		if rule.match(p) {
			out = append(out, rule.records...)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}
