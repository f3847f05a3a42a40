package dashboard

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, ShowDashboardPage)

	api := app.Group("/api/dashboard", auth.AuthMiddleware, auth.OwnerOnly)
	api.Get("/stats", StatsAPI)
	api.Get("/bills", MonthlyBillStatsAPI)
	api.Get("/expenses", ExpenseBreakdownAPI)
}

func ShowDashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		log.Printf("[DASHBOARD] Failed to load stats: %v", err)
		stats = &models.DashboardStats{}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Mess Manager",
		"CurrentPage": "dashboard",
		"UserName":    c.Locals("user_name"),
		"Stats":       stats,
	})
}

func StatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		log.Printf("[DASHBOARD] Failed to load stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

// MonthlyBillStatsAPI returns the six most recent months of billing totals.
func MonthlyBillStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetMonthlyBillStats(config.GetDB())
	if err != nil {
		log.Printf("[DASHBOARD] Failed to load bill stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch bill stats"})
	}
	return c.JSON(fiber.Map{"months": stats})
}

// ExpenseBreakdownAPI splits the month's outgoings into fixed salaries and
// operational spend.
func ExpenseBreakdownAPI(c *fiber.Ctx) error {
	now := dates.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	db := config.GetDB()

	var fixed float64
	if err := db.QueryRow(
		`SELECT COALESCE(SUM(salary), 0) FROM staff WHERE status = 'ACTIVE'`,
	).Scan(&fixed); err != nil {
		log.Printf("[DASHBOARD] Failed to load fixed expenses: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	operational, err := database.GetMonthlyExpenseTotal(db, year, month)
	if err != nil {
		log.Printf("[DASHBOARD] Failed to load operational expenses: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	breakdown := models.MonthExpenseBreakdown{
		Fixed:       fixed,
		Operational: operational,
		Total:       fixed + operational,
		Month:       dates.MonthName(month),
		Year:        year,
	}
	return c.JSON(fiber.Map{"breakdown": breakdown})
}
