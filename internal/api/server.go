// Package api serves the MindMeal session over HTTP.
package api

import (
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mindmeal/mindmeal-cli/internal/api/handlers"
	"github.com/mindmeal/mindmeal-cli/internal/api/middleware"
	"github.com/mindmeal/mindmeal-cli/internal/api/presenters"
	"github.com/mindmeal/mindmeal-cli/internal/api/routes"
	"github.com/mindmeal/mindmeal-cli/internal/auth"
	"github.com/mindmeal/mindmeal-cli/internal/service"
)

type Options struct {
	// AccessLog receives one line per request; nil disables it.
	AccessLog      io.Writer
	RateLimit      int
	RateLimitReset time.Duration
}

func NewApp(app *service.App, tokens *auth.TokenService, opts Options) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:               "mindmeal",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return presenters.FailResponse(c, "request failed", err)
		},
	})
	if opts.AccessLog != nil {
		server.Use(middleware.RequestLogger(opts.AccessLog))
	}
	reset := opts.RateLimitReset
	if reset <= 0 {
		reset = time.Second
	}
	server.Use(middleware.RateLimiter(opts.RateLimit, reset))

	validate := validator.New()
	routesConfig := routes.Config{
		App:            server,
		AuthHandler:    handlers.NewAuthHandler(app, tokens),
		ProfileHandler: handlers.NewProfileHandler(app),
		FoodHandler:    handlers.NewFoodHandler(app, validate),
		TrackerHandler: handlers.NewTrackerHandler(app, validate),
		Middleware:     middleware.New(tokens, app.Session),
	}
	routesConfig.Setup()
	return server
}
