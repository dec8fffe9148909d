package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmeal/mindmeal-cli/internal/api/presenters"
	"github.com/mindmeal/mindmeal-cli/internal/auth"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/service"
)

type AuthHandler struct {
	app    *service.App
	tokens *auth.TokenService
}

type TokenResponse struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// NewAuthHandler relies on the session for input validation.
func NewAuthHandler(app *service.App, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{app: app, tokens: tokens}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req := new(service.SignupInput)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedBodyRequest, err)
	}
	user, err := h.app.Session.Signup(c.UserContext(), *req)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedSignup, err)
	}
	return h.respondWithToken(c, user, fiber.StatusCreated, MessageSuccessSignup)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req := new(service.LoginInput)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedBodyRequest, err)
	}
	user, err := h.app.Session.Login(c.UserContext(), *req)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedLogin, err)
	}
	return h.respondWithToken(c, user, fiber.StatusOK, MessageSuccessLogin)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.app.Logout(c.UserContext()); err != nil {
		return presenters.FailResponse(c, MessageFailedLogout, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, MessageSuccessLogout)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.app.Session.RequireUser()
	if err != nil {
		return presenters.FailResponse(c, MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, user, fiber.StatusOK, MessageSuccessGetUser)
}

func (h *AuthHandler) respondWithToken(c *fiber.Ctx, user model.User, status int, message string) error {
	token, expires, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedIssueToken, err)
	}
	return presenters.SuccessResponse(c, TokenResponse{User: user, Token: token, ExpiresAt: expires}, status, message)
}
