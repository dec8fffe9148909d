package refdata

import "github.com/mindmeal/mindmeal-cli/internal/model"

type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// States lists Indian states followed by union territories.
var States = []Option{
	{Value: "andhra-pradesh", Label: "Andhra Pradesh"},
	{Value: "arunachal-pradesh", Label: "Arunachal Pradesh"},
	{Value: "assam", Label: "Assam"},
	{Value: "bihar", Label: "Bihar"},
	{Value: "chhattisgarh", Label: "Chhattisgarh"},
	{Value: "goa", Label: "Goa"},
	{Value: "gujarat", Label: "Gujarat"},
	{Value: "haryana", Label: "Haryana"},
	{Value: "himachal-pradesh", Label: "Himachal Pradesh"},
	{Value: "jharkhand", Label: "Jharkhand"},
	{Value: "karnataka", Label: "Karnataka"},
	{Value: "kerala", Label: "Kerala"},
	{Value: "madhya-pradesh", Label: "Madhya Pradesh"},
	{Value: "maharashtra", Label: "Maharashtra"},
	{Value: "manipur", Label: "Manipur"},
	{Value: "meghalaya", Label: "Meghalaya"},
	{Value: "mizoram", Label: "Mizoram"},
	{Value: "nagaland", Label: "Nagaland"},
	{Value: "odisha", Label: "Odisha"},
	{Value: "punjab", Label: "Punjab"},
	{Value: "rajasthan", Label: "Rajasthan"},
	{Value: "sikkim", Label: "Sikkim"},
	{Value: "tamil-nadu", Label: "Tamil Nadu"},
	{Value: "telangana", Label: "Telangana"},
	{Value: "tripura", Label: "Tripura"},
	{Value: "uttar-pradesh", Label: "Uttar Pradesh"},
	{Value: "uttarakhand", Label: "Uttarakhand"},
	{Value: "west-bengal", Label: "West Bengal"},
	{Value: "andaman-nicobar", Label: "Andaman and Nicobar Islands"},
	{Value: "chandigarh", Label: "Chandigarh"},
	{Value: "dadra-nagar-haveli", Label: "Dadra and Nagar Haveli"},
	{Value: "daman-diu", Label: "Daman and Diu"},
	{Value: "delhi", Label: "Delhi"},
	{Value: "jammu-kashmir", Label: "Jammu and Kashmir"},
	{Value: "ladakh", Label: "Ladakh"},
	{Value: "lakshadweep", Label: "Lakshadweep"},
	{Value: "puducherry", Label: "Puducherry"},
}

var Languages = []Option{
	{Value: string(model.LanguageEnglish), Label: "English"},
	{Value: string(model.LanguageHindi), Label: "हिंदी (Hindi)"},
	{Value: string(model.LanguageMalayalam), Label: "മലയാളം (Malayalam)"},
}

var ActivityLevels = []Option{
	{Value: string(model.ActivitySedentary), Label: "Sedentary", Description: "Little or no exercise, desk job"},
	{Value: string(model.ActivityLightlyActive), Label: "Lightly Active", Description: "Light exercise 1-3 days per week"},
	{Value: string(model.ActivityModeratelyActive), Label: "Moderately Active", Description: "Moderate exercise 3-5 days per week"},
	{Value: string(model.ActivityVeryActive), Label: "Very Active", Description: "Hard exercise 6-7 days per week"},
	{Value: string(model.ActivityExtremelyActive), Label: "Extremely Active", Description: "Very hard daily exercise or physical job"},
}

var Goals = []Option{
	{Value: string(model.GoalWeightLoss), Label: "Lose Weight"},
	{Value: string(model.GoalWeightGain), Label: "Gain Weight"},
	{Value: string(model.GoalMaintainWeight), Label: "Maintain Weight"},
	{Value: string(model.GoalDietPlan), Label: "Follow a Diet Plan"},
	{Value: string(model.GoalCalorieTracking), Label: "Track Calories"},
	{Value: string(model.GoalMuscleBuilding), Label: "Build Muscle"},
	{Value: string(model.GoalImproveMentalHealth), Label: "Improve Mental Health"},
}

var MedicalConditions = []Option{
	{Value: string(model.ConditionNone), Label: "None", Description: "No medical conditions"},
	{Value: string(model.ConditionDiabetes), Label: "Diabetes", Description: "Type 1 or Type 2 diabetes"},
	{Value: string(model.ConditionThyroid), Label: "Thyroid Disorder", Description: "Hypo or hyperthyroidism"},
	{Value: string(model.ConditionHypertension), Label: "Hypertension", Description: "High blood pressure"},
	{Value: string(model.ConditionDepression), Label: "Depression", Description: "Clinical depression"},
	{Value: string(model.ConditionAnxiety), Label: "Anxiety", Description: "Anxiety disorder"},
	{Value: string(model.ConditionPCOS), Label: "PCOS", Description: "Polycystic ovary syndrome"},
	{Value: string(model.ConditionHeartDisease), Label: "Heart Disease", Description: "Cardiovascular conditions"},
}

// HasOption reports whether value is one of the options' values.
func HasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
