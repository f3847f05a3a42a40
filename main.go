package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/attendance"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/bills"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/dashboard"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/expenses"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/holidays"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/sideincome"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/staff"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/students"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/services"
)

// customErrorHandler renders JSON for API requests and the error template
// for web pages.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Mess Manager",
		"ErrorCode":    code,
		"ErrorTitle":   "An Error Occurred",
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// All billing dates are civil dates in Indian Standard Time
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*3600+1800)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(helmet.New())

	// Health check for deployment probes
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "down", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	holidays.SetupHolidayRoutes(app)
	bills.SetupBillRoutes(app)
	staff.SetupStaffRoutes(app)
	expenses.SetupExpenseRoutes(app)
	sideincome.SetupSideIncomeRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
