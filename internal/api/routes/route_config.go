package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mindmeal/mindmeal-cli/internal/api/handlers"
	"github.com/mindmeal/mindmeal-cli/internal/api/middleware"
)

type Config struct {
	App            *fiber.App
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	FoodHandler    *handlers.FoodHandler
	TrackerHandler *handlers.TrackerHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.Auth()
	c.Profile()
	c.Foods()
	c.Tracking()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	auth.Post("/signup", c.AuthHandler.Signup)
	auth.Post("/login", c.AuthHandler.Login)
	auth.Post("/logout", c.Middleware.Auth(), c.AuthHandler.Logout)
	auth.Get("/me", c.Middleware.Auth(), c.AuthHandler.Me)
}

// Groups below share the /api/v1 prefix, so auth is attached per route to
// keep the food catalog public.
func (c *Config) Profile() {
	api := c.App.Group("/api/v1")
	auth := c.Middleware.Auth()
	api.Get("/profile", auth, c.ProfileHandler.GetProfile)
	api.Patch("/profile", auth, c.ProfileHandler.UpdateProfile)
	api.Post("/profile/complete", auth, c.ProfileHandler.CompleteOnboarding)
	api.Delete("/profile", auth, c.ProfileHandler.ResetProfile)
	api.Get("/metrics", auth, c.ProfileHandler.Metrics)

	onboarded := c.Middleware.Onboarded()
	api.Get("/cluster", auth, onboarded, c.ProfileHandler.Cluster)
	api.Get("/recommendations", auth, onboarded, c.ProfileHandler.Recommendations)
	api.Get("/meals/:meal/suggestions", auth, onboarded, c.ProfileHandler.MealSuggestions)
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods")
	foods.Get("", c.FoodHandler.SearchFoods)
	foods.Get("/:id", c.FoodHandler.GetFood)

	logs := c.App.Group("/api/v1/logs", c.Middleware.Auth(), c.Middleware.Onboarded())
	logs.Get("", c.FoodHandler.ListLogs)
	logs.Post("", c.FoodHandler.AddLog)
	logs.Delete("/today", c.FoodHandler.ClearToday)
	logs.Delete("/:id", c.FoodHandler.DeleteLog)

	api := c.App.Group("/api/v1")
	auth, onboarded := c.Middleware.Auth(), c.Middleware.Onboarded()
	api.Get("/today", auth, onboarded, c.FoodHandler.Today)
	api.Get("/history", auth, onboarded, c.FoodHandler.History)
}

func (c *Config) Tracking() {
	api := c.App.Group("/api/v1")
	auth, onboarded := c.Middleware.Auth(), c.Middleware.Onboarded()
	api.Get("/water", auth, onboarded, c.TrackerHandler.GetWater)
	api.Post("/water", auth, onboarded, c.TrackerHandler.AddWater)
	api.Delete("/water", auth, onboarded, c.TrackerHandler.RemoveWater)
	api.Get("/chat", auth, onboarded, c.TrackerHandler.ChatHistory)
	api.Post("/chat", auth, onboarded, c.TrackerHandler.Ask)
	api.Delete("/chat", auth, onboarded, c.TrackerHandler.ClearChat)
	api.Get("/export", auth, onboarded, c.TrackerHandler.Export)
}
