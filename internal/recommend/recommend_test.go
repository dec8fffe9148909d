package recommend

import (
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
)

func profile(level model.ActivityLevel, weight int, goals []model.Goal, conditions ...model.MedicalCondition) model.UserProfile {
	return model.UserProfile{
		Location:          "delhi",
		Gender:            model.GenderFemale,
		ActivityLevel:     level,
		Age:               30,
		Height:            170,
		Weight:            weight,
		Goals:             goals,
		MedicalConditions: conditions,
	}
}

func TestClusterDecisionOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    model.UserProfile
		want int
	}{
		{"sedentary with goals starts journey", profile(model.ActivitySedentary, 90, []model.Goal{model.GoalWeightLoss}), 1},
		{"active and lean optimizes", profile(model.ActivityVeryActive, 65, []model.Goal{model.GoalWeightLoss}), 2},
		{"overweight loser manages weight", profile(model.ActivityModeratelyActive, 90, []model.Goal{model.GoalWeightLoss}), 3},
		{"anxiety seeks wellness", profile(model.ActivityLightlyActive, 65, []model.Goal{model.GoalDietPlan}, model.ConditionAnxiety), 4},
		{"sedentary without weighted goals balanced", profile(model.ActivitySedentary, 65, []model.Goal{model.GoalMaintainWeight}), 5},
	}
	for _, tc := range cases {
		got := Cluster(tc.p)
		if got.ClusterID != tc.want {
			t.Fatalf("%s: expected cluster %d, got %d (%s)", tc.name, tc.want, got.ClusterID, got.ClusterName)
		}
		if len(got.Characteristics) != 4 {
			t.Fatalf("%s: expected 4 characteristics, got %d", tc.name, len(got.Characteristics))
		}
	}
}

func TestClusterIsDeterministic(t *testing.T) {
	t.Parallel()

	p := profile(model.ActivityModeratelyActive, 80, []model.Goal{model.GoalImproveMentalHealth}, model.ConditionDepression)
	first := Cluster(p)
	first.Characteristics[0] = "mutated"
	for i := 0; i < 5; i++ {
		got := Cluster(p)
		if got.ClusterID != first.ClusterID || got.Characteristics[0] == "mutated" {
			t.Fatalf("expected stable cluster output, got %+v", got)
		}
	}
}

func TestFeatureScores(t *testing.T) {
	t.Parallel()

	if ActivityScore("unknown") != 1 || ActivityScore(model.ActivityExtremelyActive) != 5 {
		t.Fatalf("unexpected activity scores")
	}
	goals := []model.Goal{model.GoalWeightLoss, model.GoalWeightLoss, model.GoalCalorieTracking, model.GoalDietPlan}
	if got := GoalScore(goals); got != 3 {
		t.Fatalf("expected goal score 3, got %d", got)
	}
	if HealthScore(nil) != 10 || HealthScore([]model.MedicalCondition{model.ConditionNone}) != 10 {
		t.Fatalf("expected full health score without conditions")
	}
	many := []model.MedicalCondition{
		model.ConditionDiabetes, model.ConditionThyroid, model.ConditionHypertension,
		model.ConditionDepression, model.ConditionAnxiety, model.ConditionPCOS,
	}
	if got := HealthScore(many); got != 0 {
		t.Fatalf("expected health score floored at 0, got %d", got)
	}
}

func TestRecommendationsAccumulateAndSort(t *testing.T) {
	t.Parallel()

	p := profile(model.ActivitySedentary, 90,
		[]model.Goal{model.GoalWeightLoss, model.GoalImproveMentalHealth},
		model.ConditionDiabetes, model.ConditionHypertension)
	recs := Recommendations(p)
	wantIDs := []string{"health-1", "food-1", "health-2", "exercise-1", "food-5", "food-2", "food-6", "mental-1"}
	if len(recs) != len(wantIDs) {
		t.Fatalf("expected %d recommendations, got %d", len(wantIDs), len(recs))
	}
	for i, id := range wantIDs {
		if recs[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, recs[i].ID)
		}
	}
}

func TestRecommendationsAlwaysIncludeMindfulEating(t *testing.T) {
	t.Parallel()

	recs := Recommendations(profile(model.ActivityVeryActive, 65, nil))
	if len(recs) != 1 || recs[0].ID != "mental-1" || recs[0].Type != model.RecommendationMentalHealth {
		t.Fatalf("expected only mindful eating, got %+v", recs)
	}
}

func TestMealSuggestionsFilterAndRank(t *testing.T) {
	t.Parallel()

	candidates := []model.FoodItem{
		{ID: "heavy", Calories: 450, Protein: 30, Carbs: 20, Category: model.CategoryBreakfast},
		{ID: "sweet", Calories: 200, Protein: 3, Carbs: 60, Category: model.CategoryFruit},
		{ID: "lean", Calories: 150, Protein: 20, Carbs: 5, Category: model.CategoryDairy},
		{ID: "light", Calories: 100, Protein: 5, Carbs: 10, Category: model.CategoryBeverage},
		{ID: "curry", Calories: 250, Protein: 25, Carbs: 8, Category: model.CategoryProtein},
	}
	p := profile(model.ActivitySedentary, 80, []model.Goal{model.GoalWeightLoss}, model.ConditionDiabetes)

	got := MealSuggestions(p, model.MealBreakfast, candidates)
	if len(got) != 2 || got[0].ID != "lean" || got[1].ID != "light" {
		t.Fatalf("unexpected breakfast suggestions %+v", got)
	}

	dinner := MealSuggestions(p, model.MealDinner, candidates)
	if len(dinner) != 3 || dinner[0].ID != "curry" {
		t.Fatalf("unexpected dinner suggestions %+v", dinner)
	}
}

func TestMealSuggestionsCapAtTen(t *testing.T) {
	t.Parallel()

	p := profile(model.ActivityModeratelyActive, 60, []model.Goal{model.GoalWeightGain})
	got := MealSuggestions(p, model.MealLunch, refdata.AllFoods())
	if len(got) != 10 {
		t.Fatalf("expected 10 suggestions, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Calories > got[i-1].Calories {
			t.Fatalf("expected calorie-dense foods first for weight gain")
		}
	}
}

func TestConfidenceScore(t *testing.T) {
	t.Parallel()

	target := 60
	p := profile(model.ActivitySedentary, 70, nil, model.ConditionNone)
	p.TargetWeight = &target
	if got := ConfidenceScore(p, 3); got != 69 {
		t.Fatalf("expected 69, got %d", got)
	}
	if got := ConfidenceScore(p, 100); got != 90 {
		t.Fatalf("expected 90 with capped data bonus, got %d", got)
	}
	if got := ConfidenceScore(model.UserProfile{}, 0); got != 50 {
		t.Fatalf("expected base 50, got %d", got)
	}
}
