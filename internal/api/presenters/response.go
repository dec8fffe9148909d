package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{Status: false, Message: message}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		res.Code = appErr.Code
	}
	if statusCode >= fiber.StatusInternalServerError {
		logger.Error(message, append([]any{"path", c.Path()}, logFields(err)...)...)
		res.Error = "internal error"
	} else if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// FailResponse picks the status from the error's type.
func FailResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFor(err), message, err)
}

func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return fiber.StatusBadRequest
	case apperrors.ErrorTypeAuth:
		return fiber.StatusUnauthorized
	case apperrors.ErrorTypeForbidden:
		return fiber.StatusForbidden
	case apperrors.ErrorTypeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func logFields(err error) []any {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.LogFields()
	}
	if err == nil {
		return nil
	}
	return []any{"error", err.Error()}
}
