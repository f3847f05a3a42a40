package bills

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupBillRoutes(app *fiber.App) {
	api := app.Group("/api/bills", auth.AuthMiddleware)

	// Students see their own bills; owners see everything
	api.Get("/", ListBillsAPI)
	api.Get("/:id", GetBillAPI)
	api.Get("/:id/pdf", BillPDFAPI)

	// Owner-only mutations
	api.Post("/generate", auth.OwnerOnly, GenerateBillsAPI)
	api.Post("/:id/pay", auth.OwnerOnly, PayBillAPI)
}
