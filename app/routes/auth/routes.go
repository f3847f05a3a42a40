package auth

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	// Public routes
	app.Get("/login", ShowLoginPage)
	app.Post("/api/auth/login", LoginAPI)
	app.Post("/api/auth/logout", LogoutAPI)

	// Protected routes
	api := app.Group("/api/auth", AuthMiddleware)
	api.Get("/me", MeAPI)
}
