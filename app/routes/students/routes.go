package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware, auth.OwnerOnly)

	api.Get("/", ListStudentsAPI)
	api.Get("/eligible", EligibleStudentsAPI)
	api.Post("/", AddStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
