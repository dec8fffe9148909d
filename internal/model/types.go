package model

import "time"

type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageHindi     Language = "hindi"
	LanguageMalayalam Language = "malayalam"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Goal string

const (
	GoalWeightLoss          Goal = "weight_loss"
	GoalWeightGain          Goal = "weight_gain"
	GoalMaintainWeight      Goal = "maintain_weight"
	GoalDietPlan            Goal = "diet_plan"
	GoalCalorieTracking     Goal = "calorie_tracking"
	GoalMuscleBuilding      Goal = "muscle_building"
	GoalImproveMentalHealth Goal = "improve_mental_health"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

type MedicalCondition string

const (
	ConditionDiabetes     MedicalCondition = "diabetes"
	ConditionThyroid      MedicalCondition = "thyroid"
	ConditionHypertension MedicalCondition = "hypertension"
	ConditionDepression   MedicalCondition = "depression"
	ConditionAnxiety      MedicalCondition = "anxiety"
	ConditionPCOS         MedicalCondition = "pcos"
	ConditionHeartDisease MedicalCondition = "heart_disease"
	ConditionNone         MedicalCondition = "none"
)

type FoodCategory string

const (
	CategoryBreakfast FoodCategory = "breakfast"
	CategoryLunch     FoodCategory = "lunch"
	CategoryDinner    FoodCategory = "dinner"
	CategorySnack     FoodCategory = "snack"
	CategoryBeverage  FoodCategory = "beverage"
	CategoryFruit     FoodCategory = "fruit"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryProtein   FoodCategory = "protein"
	CategoryGrain     FoodCategory = "grain"
	CategoryDairy     FoodCategory = "dairy"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

type RecommendationType string

const (
	RecommendationFood         RecommendationType = "food"
	RecommendationExercise     RecommendationType = "exercise"
	RecommendationMentalHealth RecommendationType = "mental_health"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type User struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Credentials is the persisted authentication record. Only a bcrypt hash of
// the password is stored.
type Credentials struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type UserProfile struct {
	Location          string             `json:"location" yaml:"location" validate:"max=100"`
	Language          Language           `json:"language" yaml:"language" validate:"oneof=english hindi malayalam"`
	Gender            Gender             `json:"gender" yaml:"gender" validate:"oneof=male female other"`
	Goals             []Goal             `json:"goals" yaml:"goals" validate:"dive,oneof=weight_loss weight_gain maintain_weight diet_plan calorie_tracking muscle_building improve_mental_health"`
	ActivityLevel     ActivityLevel      `json:"activityLevel" yaml:"activityLevel" validate:"oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	Age               int                `json:"age" yaml:"age" validate:"gte=13,lte=100"`
	Height            int                `json:"height" yaml:"height" validate:"gte=100,lte=250"`
	Weight            int                `json:"weight" yaml:"weight" validate:"gte=30,lte=300"`
	TargetWeight      *int               `json:"targetWeight,omitempty" yaml:"targetWeight,omitempty" validate:"omitempty,gte=30,lte=300"`
	MedicalConditions []MedicalCondition `json:"medicalConditions" yaml:"medicalConditions" validate:"dive,oneof=diabetes thyroid hypertension depression anxiety pcos heart_disease none"`
}

// DefaultProfile seeds the first profile update before onboarding.
func DefaultProfile() UserProfile {
	return UserProfile{
		Language:          LanguageEnglish,
		Gender:            GenderMale,
		Goals:             []Goal{},
		ActivityLevel:     ActivitySedentary,
		Age:               25,
		Height:            170,
		Weight:            70,
		MedicalConditions: []MedicalCondition{},
	}
}

func (p UserProfile) HasGoal(g Goal) bool {
	for _, goal := range p.Goals {
		if goal == g {
			return true
		}
	}
	return false
}

func (p UserProfile) HasCondition(c MedicalCondition) bool {
	for _, cond := range p.MedicalConditions {
		if cond == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot alias session state.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Goals = append([]Goal(nil), p.Goals...)
	out.MedicalConditions = append([]MedicalCondition(nil), p.MedicalConditions...)
	if p.TargetWeight != nil {
		v := *p.TargetWeight
		out.TargetWeight = &v
	}
	return out
}

type FoodItem struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	NameHindi    string       `json:"nameHindi,omitempty" yaml:"nameHindi,omitempty"`
	Calories     float64      `json:"calories" yaml:"calories"`
	Protein      float64      `json:"protein" yaml:"protein"`
	Carbs        float64      `json:"carbs" yaml:"carbs"`
	Fat          float64      `json:"fat" yaml:"fat"`
	Fiber        float64      `json:"fiber,omitempty" yaml:"fiber,omitempty"`
	Category     FoodCategory `json:"category" yaml:"category"`
	ServingSize  string       `json:"servingSize" yaml:"servingSize"`
	ServingGrams float64      `json:"servingGrams" yaml:"servingGrams"`
}

type FoodLog struct {
	ID        string    `json:"id" yaml:"id"`
	FoodItem  FoodItem  `json:"foodItem" yaml:"foodItem"`
	MealType  MealType  `json:"mealType" yaml:"mealType"`
	Servings  float64   `json:"servings" yaml:"servings"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Date      string    `json:"date" yaml:"date"`
}

type DailyStats struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"caloriesConsumed"`
	CalorieGoal      int     `json:"calorieGoal"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	Water            int     `json:"water"`
}

type MacroTargets struct {
	Protein int `json:"protein" yaml:"protein"`
	Carbs   int `json:"carbs" yaml:"carbs"`
	Fat     int `json:"fat" yaml:"fat"`
}

type HealthMetrics struct {
	BMI                   float64      `json:"bmi" yaml:"bmi"`
	BMICategory           BMICategory  `json:"bmiCategory" yaml:"bmiCategory"`
	BMR                   int          `json:"bmr" yaml:"bmr"`
	TDEE                  int          `json:"tdee" yaml:"tdee"`
	DailyCalorieGoal      int          `json:"dailyCalorieGoal" yaml:"dailyCalorieGoal"`
	EmotionalBalanceIndex int          `json:"emotionalBalanceIndex" yaml:"emotionalBalanceIndex"`
	Macros                MacroTargets `json:"macros" yaml:"macros"`
}

type UserCluster struct {
	ClusterID       int      `json:"clusterId"`
	ClusterName     string   `json:"clusterName"`
	Characteristics []string `json:"characteristics"`
}

type Recommendation struct {
	ID             string             `json:"id"`
	Type           RecommendationType `json:"type"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Priority       Priority           `json:"priority"`
	RelevanceScore float64            `json:"relevanceScore"`
}

type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderAI   ChatSender = "ai"
)

type ChatMessage struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}

type WaterIntake struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
}

type DayCalories struct {
	Day      string  `json:"day" yaml:"day"`
	Date     string  `json:"date" yaml:"date"`
	Calories float64 `json:"calories" yaml:"calories"`
}
