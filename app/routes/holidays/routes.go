package holidays

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupHolidayRoutes(app *fiber.App) {
	api := app.Group("/api/holidays", auth.AuthMiddleware, auth.OwnerOnly)

	api.Get("/", ListHolidaysAPI)
	api.Post("/", AddHolidayAPI)
	api.Delete("/:id", DeleteHolidayAPI)
}
