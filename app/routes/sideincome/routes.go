package sideincome

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupSideIncomeRoutes(app *fiber.App) {
	api := app.Group("/api/side-income", auth.AuthMiddleware, auth.OwnerOnly)

	api.Get("/", ListSideIncomeAPI)
	api.Get("/stats", SideIncomeStatsAPI)
	api.Post("/", AddSideIncomeAPI)
	api.Put("/:id", UpdateSideIncomeAPI)
	api.Delete("/:id", DeleteSideIncomeAPI)
}
