package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance", auth.AuthMiddleware, auth.OwnerOnly)

	api.Get("/", DailyRegisterAPI)
	api.Post("/mark", MarkAttendanceAPI)
	api.Get("/missing", MissingDatesAPI)
	api.Get("/history/:studentId", StudentHistoryAPI)
}
