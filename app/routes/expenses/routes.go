package expenses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupExpenseRoutes(app *fiber.App) {
	api := app.Group("/api/expenses", auth.AuthMiddleware, auth.OwnerOnly)

	api.Get("/", ListExpensesAPI)
	api.Post("/", AddExpenseAPI)
	api.Delete("/:id", DeleteExpenseAPI)
}
