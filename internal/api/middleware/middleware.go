package middleware

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/mindmeal/mindmeal-cli/internal/api/presenters"
	"github.com/mindmeal/mindmeal-cli/internal/auth"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/service"
)

const LocalUserID = "user_id"

type Middleware struct {
	tokens  *auth.TokenService
	session *service.Session
}

func New(tokens *auth.TokenService, session *service.Session) Middleware {
	return Middleware{tokens: tokens, session: session}
}

// Auth requires a bearer token issued to the signed-in user.
func (m Middleware) Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, "missing bearer token", apperrors.ErrNotAuthenticated)
		}
		userID, err := m.tokens.UserID(strings.TrimSpace(token))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, "invalid bearer token", err)
		}
		user, err := m.session.RequireUser()
		if err != nil || user.ID != userID {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, "session is not active", apperrors.ErrNotAuthenticated)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// Onboarded runs after Auth and rejects users who have not finished onboarding.
func (m Middleware) Onboarded() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := m.session.RequireOnboarded(); err != nil {
			return presenters.FailResponse(c, "complete onboarding first", err)
		}
		return c.Next()
	}
}

func RequestLogger(output io.Writer) fiber.Handler {
	return fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	})
}

// RateLimiter caps requests per client IP. limit <= 0 disables it.
func RateLimiter(limit int, expiration time.Duration) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, "too many requests", nil)
		},
	})
}
