package expenses

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

var validate = validator.New()

// ListExpensesAPI lists expenses, scoped to a month when month/year query
// params are present.
func ListExpensesAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)

	var (
		list []*models.Expense
		err  error
	)
	if month >= 1 && month <= 12 && year > 0 {
		list, err = database.GetExpensesByMonth(config.GetDB(), year, month)
	} else {
		list, err = database.GetAllExpenses(config.GetDB())
	}
	if err != nil {
		log.Printf("[EXPENSES] Failed to list expenses: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	total := 0.0
	for _, e := range list {
		total += e.Amount
	}
	return c.JSON(fiber.Map{"expenses": list, "total": total})
}

func AddExpenseAPI(c *fiber.Ctx) error {
	type request struct {
		Description string  `json:"description" validate:"required"`
		Amount      float64 `json:"amount" validate:"required,gt=0"`
		Category    string  `json:"category" validate:"omitempty,oneof=GROCERY GAS ELECTRICITY MAINTENANCE OTHER"`
		Date        string  `json:"date"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dateStr := req.Date
	if dateStr == "" {
		dateStr = dates.TodayStr()
	} else if !dates.IsValidDateStr(dateStr) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}
	if dateStr > dates.TodayStr() {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot record expenses for future dates"})
	}

	category := models.ExpenseCategory(req.Category)
	if category == "" {
		category = models.ExpenseOther
	}

	userID := c.Locals("user_id").(string)
	expense := &models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    category,
		DateStr:     dateStr,
		CreatedBy:   &userID,
	}
	if err := database.CreateExpense(config.GetDB(), expense); err != nil {
		log.Printf("[EXPENSES] Failed to create expense: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Expense added", "expense": expense})
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeleteExpense(config.GetDB(), id); err != nil {
		log.Printf("[EXPENSES] Failed to delete expense %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.JSON(fiber.Map{"message": "Expense removed"})
}
