package sideincome

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

var validate = validator.New()

// Entries stay editable only on the day they were recorded.
func isEditable(s *models.SideIncome) bool {
	return s.DateStr == dates.TodayStr()
}

// ListSideIncomeAPI lists a month's side income, optionally filtered by
// category, with each entry's editable flag stamped for the client.
func ListSideIncomeAPI(c *fiber.Ctx) error {
	now := dates.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	category := c.Query("category")
	if category != "" && !models.IsValidIncomeCategory(category) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category"})
	}

	entries, err := database.GetSideIncomeByMonth(config.GetDB(), year, month, category)
	if err != nil {
		log.Printf("[SIDE_INCOME] Failed to list entries: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch side income"})
	}

	for _, e := range entries {
		e.Editable = isEditable(e)
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func SideIncomeStatsAPI(c *fiber.Ctx) error {
	now := dates.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	totals, err := database.GetSideIncomeTotals(config.GetDB(), year, month)
	if err != nil {
		log.Printf("[SIDE_INCOME] Failed to aggregate totals: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	return c.JSON(fiber.Map{
		"month": dates.MonthName(month),
		"year":  year,
		"stats": totals,
	})
}

type incomeRequest struct {
	Category    string  `json:"category" validate:"required,oneof=SNACKS PANI_PURI CUSTOM"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func (r *incomeRequest) check() string {
	if r.Category == string(models.IncomeCustom) && r.Description == "" {
		return "Description is required for custom income"
	}
	if r.Date != "" {
		if !dates.IsValidDateStr(r.Date) {
			return "Invalid date, expected YYYY-MM-DD"
		}
		if r.Date > dates.TodayStr() {
			return "Cannot record income for future dates"
		}
		// Backdating is capped at one year
		if r.Date < dates.Now().AddDate(-1, 0, 0).Format("2006-01-02") {
			return "Date is more than a year old"
		}
	}
	return ""
}

func AddSideIncomeAPI(c *fiber.Ctx) error {
	var req incomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := req.check(); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	dateStr := req.Date
	if dateStr == "" {
		dateStr = dates.TodayStr()
	}

	userID := c.Locals("user_id").(string)
	entry := &models.SideIncome{
		Category:    models.IncomeCategory(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		DateStr:     dateStr,
		CreatedBy:   &userID,
	}
	if err := database.CreateSideIncome(config.GetDB(), entry); err != nil {
		log.Printf("[SIDE_INCOME] Failed to create entry: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create entry"})
	}

	entry.Editable = isEditable(entry)
	return c.Status(201).JSON(fiber.Map{"message": "Income recorded", "entry": entry})
}

func UpdateSideIncomeAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := database.GetSideIncomeByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !isEditable(existing) {
		return c.Status(403).JSON(fiber.Map{"error": "Only today's entries can be edited"})
	}

	var req incomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := req.check(); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	existing.Category = models.IncomeCategory(req.Category)
	existing.Amount = req.Amount
	existing.Description = req.Description
	if req.Date != "" {
		existing.DateStr = req.Date
	}

	if err := database.UpdateSideIncome(config.GetDB(), existing); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Entry not found"})
		}
		log.Printf("[SIDE_INCOME] Failed to update entry %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update entry"})
	}

	existing.Editable = isEditable(existing)
	return c.JSON(fiber.Map{"message": "Entry updated", "entry": existing})
}

func DeleteSideIncomeAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := database.GetSideIncomeByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !isEditable(existing) {
		return c.Status(403).JSON(fiber.Map{"error": "Only today's entries can be deleted"})
	}

	if err := database.DeleteSideIncome(config.GetDB(), id); err != nil {
		log.Printf("[SIDE_INCOME] Failed to delete entry %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete entry"})
	}
	return c.JSON(fiber.Map{"message": "Entry removed"})
}
