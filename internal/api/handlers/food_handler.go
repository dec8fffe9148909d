package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mindmeal/mindmeal-cli/internal/api/presenters"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
	"github.com/mindmeal/mindmeal-cli/internal/service"
)

type FoodHandler struct {
	app       *service.App
	validator *validator.Validate
}

type AddFoodLogRequest struct {
	FoodID   string         `json:"foodId" validate:"required"`
	MealType model.MealType `json:"mealType" validate:"required,oneof=breakfast lunch snack dinner"`
	Servings float64        `json:"servings" validate:"omitempty,gte=0.5,lte=20"`
}

func NewFoodHandler(app *service.App, validator *validator.Validate) *FoodHandler {
	return &FoodHandler{app: app, validator: validator}
}

// SearchFoods filters the catalog by ?q= and ?category=.
func (h *FoodHandler) SearchFoods(c *fiber.Ctx) error {
	foods := refdata.SearchFoods(c.Query("q"))
	if category := model.FoodCategory(c.Query("category")); category != "" {
		filtered := make([]model.FoodItem, 0, len(foods))
		for _, f := range foods {
			if f.Category == category {
				filtered = append(filtered, f)
			}
		}
		foods = filtered
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, MessageSuccessGetFoods)
}

func (h *FoodHandler) GetFood(c *fiber.Ctx) error {
	item, ok := refdata.FoodByID(c.Params("id"))
	if !ok {
		return presenters.FailResponse(c, MessageFailedGetFood, apperrors.ErrFoodNotFound)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusOK, MessageSuccessGetFood)
}

// ListLogs returns the log for ?date= (default today), optionally narrowed
// by ?meal=.
func (h *FoodHandler) ListLogs(c *fiber.Ctx) error {
	date := c.Query("date", h.app.FoodLogs.Today())
	var logs []model.FoodLog
	if meal := model.MealType(c.Query("meal")); meal != "" {
		logs = h.app.FoodLogs.ByMealType(meal, date)
	} else {
		logs = h.app.FoodLogs.ByDate(date)
	}
	return presenters.SuccessResponse(c, logs, fiber.StatusOK, MessageSuccessGetLogs)
}

func (h *FoodHandler) AddLog(c *fiber.Ctx) error {
	req := new(AddFoodLogRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedAddLog, err)
	}
	item, ok := refdata.FoodByID(req.FoodID)
	if !ok {
		return presenters.FailResponse(c, MessageFailedAddLog, apperrors.ErrFoodNotFound)
	}
	entry, err := h.app.FoodLogs.Add(c.UserContext(), item, req.MealType, req.Servings)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedAddLog, err)
	}
	return presenters.SuccessResponse(c, entry, fiber.StatusCreated, MessageSuccessAddLog)
}

func (h *FoodHandler) DeleteLog(c *fiber.Ctx) error {
	removed, err := h.app.FoodLogs.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.FailResponse(c, MessageFailedDeleteLog, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"removed": removed}, fiber.StatusOK, MessageSuccessDeleteLog)
}

func (h *FoodHandler) ClearToday(c *fiber.Ctx) error {
	n, err := h.app.FoodLogs.ClearToday(c.UserContext())
	if err != nil {
		return presenters.FailResponse(c, MessageFailedClearLogs, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"removed": n}, fiber.StatusOK, MessageSuccessClearLogs)
}

func (h *FoodHandler) Today(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.app.TodaySummary(), fiber.StatusOK, MessageSuccessToday)
}

func (h *FoodHandler) History(c *fiber.Ctx) error {
	history, err := h.app.CalorieHistory(c.QueryInt("days", 7))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedHistory, err)
	}
	return presenters.SuccessResponse(c, history, fiber.StatusOK, MessageSuccessHistory)
}
