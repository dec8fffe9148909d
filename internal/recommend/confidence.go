package recommend

import "github.com/mindmeal/mindmeal-cli/internal/model"

// ConfidenceScore estimates, on 0-100, how much the recommendations can be
// trusted given profile completeness and days of logged data.
func ConfidenceScore(p model.UserProfile, daysOfData int) int {
	confidence := 50
	confidence += min(30, max(0, daysOfData)*3)
	if p.Location != "" {
		confidence += 2
	}
	if len(p.MedicalConditions) > 0 {
		confidence += 3
	}
	if p.TargetWeight != nil && *p.TargetWeight > 0 {
		confidence += 5
	}
	return min(100, confidence)
}
