package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mindmeal/mindmeal-cli/internal/api/presenters"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/metrics"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
	"github.com/mindmeal/mindmeal-cli/internal/service"
)

type ProfileHandler struct {
	app *service.App
}

type MetricsResponse struct {
	model.HealthMetrics
	BMIInfo    metrics.CategoryInfo `json:"bmiInfo"`
	Diet       metrics.Diet         `json:"diet"`
	HasProfile bool                 `json:"hasProfile"`
}

type RecommendationsResponse struct {
	Confidence      int                    `json:"confidence"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

func NewProfileHandler(app *service.App) *ProfileHandler {
	return &ProfileHandler{app: app}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	p, ok := h.app.Session.Profile()
	if !ok {
		return presenters.FailResponse(c, MessageFailedGetProfile, apperrors.ErrProfileMissing)
	}
	return presenters.SuccessResponse(c, p, fiber.StatusOK, MessageSuccessGetProfile)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	patch := new(service.ProfilePatch)
	if err := c.BodyParser(patch); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedBodyRequest, err)
	}
	p, err := h.app.Session.UpdateProfile(c.UserContext(), *patch)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedUpdateProfile, err)
	}
	return presenters.SuccessResponse(c, p, fiber.StatusOK, MessageSuccessUpdateProfile)
}

func (h *ProfileHandler) CompleteOnboarding(c *fiber.Ctx) error {
	if err := h.app.Session.CompleteOnboarding(c.UserContext()); err != nil {
		return presenters.FailResponse(c, MessageFailedCompleteProfile, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, MessageSuccessCompleteProfile)
}

func (h *ProfileHandler) ResetProfile(c *fiber.Ctx) error {
	if err := h.app.Session.ResetProfile(c.UserContext()); err != nil {
		return presenters.FailResponse(c, MessageFailedResetProfile, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, MessageSuccessResetProfile)
}

func (h *ProfileHandler) Metrics(c *fiber.Ctx) error {
	m := h.app.Session.Metrics()
	_, hasProfile := h.app.Session.Profile()
	return presenters.SuccessResponse(c, MetricsResponse{
		HealthMetrics: m,
		BMIInfo:       metrics.BMICategoryInfo(m.BMICategory),
		Diet:          metrics.DietType(m.DailyCalorieGoal),
		HasProfile:    hasProfile,
	}, fiber.StatusOK, MessageSuccessGetMetrics)
}

func (h *ProfileHandler) Cluster(c *fiber.Ctx) error {
	cluster, err := h.app.Session.Cluster()
	if err != nil {
		return presenters.FailResponse(c, MessageFailedGetCluster, err)
	}
	return presenters.SuccessResponse(c, cluster, fiber.StatusOK, MessageSuccessGetCluster)
}

func (h *ProfileHandler) Recommendations(c *fiber.Ctx) error {
	recs, err := h.app.Session.Recommendations()
	if err != nil {
		return presenters.FailResponse(c, MessageFailedRecommendations, err)
	}
	return presenters.SuccessResponse(c, RecommendationsResponse{
		Confidence:      h.app.Confidence(),
		Recommendations: recs,
	}, fiber.StatusOK, MessageSuccessRecommendations)
}

func (h *ProfileHandler) MealSuggestions(c *fiber.Ctx) error {
	meal := model.MealType(c.Params("meal"))
	foods, err := h.app.Session.MealSuggestions(meal, refdata.AllFoods())
	if err != nil {
		return presenters.FailResponse(c, MessageFailedMealSuggestions, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, MessageSuccessMealSuggestions)
}
