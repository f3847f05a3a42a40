package bills

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/services"
)

func GenerateBillsAPI(c *fiber.Ctx) error {
	type request struct {
		Month string `json:"month"`
		Year  int    `json:"year"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Month == "" || req.Year == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Month and year are required"})
	}

	userID := c.Locals("user_id").(string)
	summary, err := services.GenerateMonthlyBills(config.GetDB(), req.Month, req.Year, &userID)
	if err != nil {
		if ve, ok := err.(*services.ValidationError); ok {
			return c.Status(400).JSON(fiber.Map{"error": ve.Message})
		}
		log.Printf("[BILLS] Generation failed for %s %d: %v", req.Month, req.Year, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate bills"})
	}

	return c.JSON(fiber.Map{
		"message": "Bills generated",
		"summary": summary,
	})
}

// ListBillsAPI lists bills. Students are pinned to their own bills regardless
// of the studentId filter; owners may filter freely.
func ListBillsAPI(c *fiber.Ctx) error {
	filters := database.BillFilters{
		StudentID: c.Query("studentId"),
		Status:    c.Query("status"),
		Month:     c.Query("month"),
		Year:      c.QueryInt("year", 0),
	}

	role := c.Locals("user_role").(models.Role)
	if role != models.RoleOwner {
		filters.StudentID = c.Locals("user_id").(string)
	}

	bills, err := database.GetBills(config.GetDB(), filters)
	if err != nil {
		log.Printf("[BILLS] Failed to list bills: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch bills"})
	}
	return c.JSON(fiber.Map{"bills": bills})
}

func GetBillAPI(c *fiber.Ctx) error {
	bill, err := loadBillForViewer(c)
	if bill == nil {
		return err
	}
	return c.JSON(fiber.Map{"bill": bill})
}

func PayBillAPI(c *fiber.Ctx) error {
	type request struct {
		TransactionRef string `json:"transactionRef"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.TransactionRef == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Transaction reference is required"})
	}

	id := c.Params("id")
	existing, err := database.GetBillByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Bill not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if existing.Status == models.BillPaid {
		return c.Status(400).JSON(fiber.Map{"error": "Bill is already paid"})
	}

	bill, err := database.MarkBillPaid(config.GetDB(), id, req.TransactionRef)
	if err != nil {
		// Zero rows means a concurrent request won the PAID transition
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"error": "Bill is already paid"})
		}
		log.Printf("[BILLS] Failed to mark bill %s paid: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.JSON(fiber.Map{"message": "Payment recorded", "bill": bill})
}

// loadBillForViewer fetches the bill and enforces that students only see
// their own. When it returns a nil bill the error response has already been
// written; callers just return the error value.
func loadBillForViewer(c *fiber.Ctx) (*models.BillWithStudent, error) {
	id := c.Params("id")

	bill, err := database.GetBillByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, c.Status(404).JSON(fiber.Map{"error": "Bill not found"})
		}
		log.Printf("[BILLS] Failed to load bill %s: %v", id, err)
		return nil, c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	role := c.Locals("user_role").(models.Role)
	if role != models.RoleOwner && bill.StudentID != c.Locals("user_id").(string) {
		return nil, c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
	return bill, nil
}
