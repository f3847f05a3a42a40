package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupStaffRoutes(app *fiber.App) {
	api := app.Group("/api/staff", auth.AuthMiddleware, auth.OwnerOnly)

	api.Get("/", ListStaffAPI)
	api.Post("/", AddStaffAPI)
	api.Put("/:id", UpdateStaffAPI)
	api.Delete("/:id", DeleteStaffAPI)

	api.Post("/:id/pay", PaySalaryAPI)
	api.Get("/payments", PaymentHistoryAPI)
}
