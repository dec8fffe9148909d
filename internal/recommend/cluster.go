package recommend

import "github.com/mindmeal/mindmeal-cli/internal/model"

type clusterRule struct {
	match   func(p model.UserProfile, f Features) bool
	cluster model.UserCluster
}

// clusterRules is evaluated in order; the first match wins and the last rule
// always matches.
var clusterRules = []clusterRule{
	{
		match: func(_ model.UserProfile, f Features) bool { return f.ActivityScore < 2 && f.GoalScore > 0 },
		cluster: model.UserCluster{
			ClusterID:   1,
			ClusterName: "Health Journey Starter",
			Characteristics: []string{
				"New to fitness tracking",
				"Motivated to improve",
				"Needs guidance on basics",
				"Benefits from step-by-step plans",
			},
		},
	},
	{
		match: func(_ model.UserProfile, f Features) bool { return f.ActivityScore >= 3 && f.BMI < 25 },
		cluster: model.UserCluster{
			ClusterID:   2,
			ClusterName: "Active Optimizer",
			Characteristics: []string{
				"Already active lifestyle",
				"Focused on optimization",
				"Interested in performance",
				"Responds to advanced metrics",
			},
		},
	},
	{
		match: func(p model.UserProfile, f Features) bool { return p.HasGoal(model.GoalWeightLoss) && f.BMI >= 25 },
		cluster: model.UserCluster{
			ClusterID:   3,
			ClusterName: "Weight Manager",
			Characteristics: []string{
				"Primary focus on weight loss",
				"Needs calorie awareness",
				"Benefits from meal planning",
				"Responds to progress tracking",
			},
		},
	},
	{
		match: func(p model.UserProfile, _ Features) bool { return wantsMentalSupport(p) },
		cluster: model.UserCluster{
			ClusterID:   4,
			ClusterName: "Wellness Seeker",
			Characteristics: []string{
				"Prioritizes mental wellbeing",
				"Values holistic approach",
				"Interested in mood-food connection",
				"Benefits from stress-aware recommendations",
			},
		},
	},
	{
		match: func(model.UserProfile, Features) bool { return true },
		cluster: model.UserCluster{
			ClusterID:   5,
			ClusterName: "Balanced Lifestyle",
			Characteristics: []string{
				"Seeks overall balance",
				"Moderate activity level",
				"Open to various recommendations",
				"Values sustainable habits",
			},
		},
	},
}

// Cluster assigns p to one of the five fixed segments. It is deterministic.
func Cluster(p model.UserProfile) model.UserCluster {
	f := ExtractFeatures(p)
	for _, rule := range clusterRules {
		if rule.match(p, f) {
			return cloneCluster(rule.cluster)
		}
	}
	return cloneCluster(clusterRules[len(clusterRules)-1].cluster)
}

func wantsMentalSupport(p model.UserProfile) bool {
	return p.HasGoal(model.GoalImproveMentalHealth) ||
		p.HasCondition(model.ConditionDepression) ||
		p.HasCondition(model.ConditionAnxiety)
}

func cloneCluster(c model.UserCluster) model.UserCluster {
	c.Characteristics = append([]string(nil), c.Characteristics...)
	return c
}
