// Package recommend assigns profiles to fixed user segments and selects
// canned recommendations. Both are ordered rule tables, not trained models.
package recommend

import (
	"github.com/mindmeal/mindmeal-cli/internal/metrics"
	"github.com/mindmeal/mindmeal-cli/internal/model"
)

// Features is the derived vector the cluster rules evaluate.
type Features struct {
	BMI           float64 `json:"bmi"`
	ActivityScore int     `json:"activityScore"`
	GoalScore     int     `json:"goalScore"`
	HealthScore   int     `json:"healthScore"`
}

var activityScores = map[model.ActivityLevel]int{
	model.ActivitySedentary:        1,
	model.ActivityLightlyActive:    2,
	model.ActivityModeratelyActive: 3,
	model.ActivityVeryActive:       4,
	model.ActivityExtremelyActive:  5,
}

var goalWeights = map[model.Goal]int{
	model.GoalWeightLoss:          2,
	model.GoalWeightGain:          2,
	model.GoalMuscleBuilding:      2,
	model.GoalImproveMentalHealth: 1,
	model.GoalCalorieTracking:     1,
}

// ActivityScore maps an activity level onto 1-5. Unknown levels score 1.
func ActivityScore(level model.ActivityLevel) int {
	if s, ok := activityScores[level]; ok {
		return s
	}
	return 1
}

// GoalScore counts each weighted goal once, however often it is repeated.
func GoalScore(goals []model.Goal) int {
	seen := map[model.Goal]bool{}
	score := 0
	for _, g := range goals {
		if seen[g] {
			continue
		}
		seen[g] = true
		score += goalWeights[g]
	}
	return score
}

// HealthScore is 10 minus 2 per condition, floored at 0. No conditions, or
// "none", scores 10.
func HealthScore(conditions []model.MedicalCondition) int {
	if len(conditions) == 0 {
		return 10
	}
	for _, c := range conditions {
		if c == model.ConditionNone {
			return 10
		}
	}
	return max(0, 10-2*len(conditions))
}

func ExtractFeatures(p model.UserProfile) Features {
	var bmi float64
	if p.Height > 0 {
		bmi = metrics.BMI(float64(p.Weight), float64(p.Height))
	}
	return Features{
		BMI:           bmi,
		ActivityScore: ActivityScore(p.ActivityLevel),
		GoalScore:     GoalScore(p.Goals),
		HealthScore:   HealthScore(p.MedicalConditions),
	}
}
