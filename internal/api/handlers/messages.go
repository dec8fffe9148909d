package handlers

const (
	MessageFailedBodyRequest = "failed to parse request body"

	MessageSuccessSignup    = "account created"
	MessageFailedSignup     = "failed to create account"
	MessageSuccessLogin     = "logged in"
	MessageFailedLogin      = "failed to log in"
	MessageSuccessLogout    = "logged out"
	MessageFailedLogout     = "failed to log out"
	MessageSuccessGetUser   = "user found"
	MessageFailedGetUser    = "failed to get user"
	MessageFailedIssueToken = "failed to issue token"

	MessageSuccessGetProfile      = "profile found"
	MessageFailedGetProfile       = "failed to get profile"
	MessageSuccessUpdateProfile   = "profile updated"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageSuccessCompleteProfile = "onboarding complete"
	MessageFailedCompleteProfile  = "failed to complete onboarding"
	MessageSuccessResetProfile    = "profile reset"
	MessageFailedResetProfile     = "failed to reset profile"
	MessageSuccessGetMetrics      = "health metrics"
	MessageSuccessGetCluster      = "user cluster"
	MessageFailedGetCluster       = "failed to get cluster"
	MessageSuccessRecommendations = "recommendations"
	MessageFailedRecommendations  = "failed to get recommendations"
	MessageSuccessMealSuggestions = "meal suggestions"
	MessageFailedMealSuggestions  = "failed to get meal suggestions"

	MessageSuccessGetFoods  = "foods found"
	MessageFailedGetFood    = "failed to get food"
	MessageSuccessGetFood   = "food found"
	MessageSuccessGetLogs   = "food logs"
	MessageSuccessAddLog    = "food logged"
	MessageFailedAddLog     = "failed to log food"
	MessageSuccessDeleteLog = "food log removed"
	MessageFailedDeleteLog  = "failed to remove food log"
	MessageSuccessClearLogs = "today's food logs cleared"
	MessageFailedClearLogs  = "failed to clear food logs"
	MessageSuccessToday     = "today"
	MessageSuccessHistory   = "calorie history"
	MessageFailedHistory    = "failed to get calorie history"

	MessageSuccessWater     = "water intake"
	MessageFailedWater      = "failed to update water intake"
	MessageSuccessChat      = "chat reply"
	MessageFailedChat       = "failed to answer"
	MessageSuccessChatLog   = "chat history"
	MessageSuccessChatClear = "chat history cleared"
	MessageFailedChatClear  = "failed to clear chat history"
	MessageFailedExport     = "failed to export data"
)
