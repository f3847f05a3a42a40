package staff

import (
	"database/sql"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

var validate = validator.New()

func ListStaffAPI(c *fiber.Ctx) error {
	staff, err := database.GetAllStaff(config.GetDB())
	if err != nil {
		log.Printf("[STAFF] Failed to list staff: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

func AddStaffAPI(c *fiber.Ctx) error {
	type request struct {
		Name   string  `json:"name" validate:"required"`
		Role   string  `json:"role" validate:"required"`
		Salary float64 `json:"salary" validate:"required,gt=0"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	member := &models.Staff{Name: req.Name, Role: req.Role, Salary: req.Salary}
	if err := database.CreateStaff(config.GetDB(), member); err != nil {
		log.Printf("[STAFF] Failed to create staff: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Staff added", "staff": member})
}

func UpdateStaffAPI(c *fiber.Ctx) error {
	type request struct {
		Name   string  `json:"name" validate:"required"`
		Role   string  `json:"role" validate:"required"`
		Salary float64 `json:"salary" validate:"required,gt=0"`
		Status string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.AccountStatus(req.Status)
	if status == "" {
		status = models.StatusActive
	}

	member := &models.Staff{
		ID:     c.Params("id"),
		Name:   req.Name,
		Role:   req.Role,
		Salary: req.Salary,
		Status: status,
	}
	if err := database.UpdateStaff(config.GetDB(), member); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		log.Printf("[STAFF] Failed to update staff %s: %v", member.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff"})
	}

	return c.JSON(fiber.Map{"message": "Staff updated", "staff": member})
}

func DeleteStaffAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeleteStaff(config.GetDB(), id); err != nil {
		log.Printf("[STAFF] Failed to delete staff %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete staff"})
	}
	return c.JSON(fiber.Map{"message": "Staff removed"})
}

// PaySalaryAPI disburses this month's salary. Amount defaults to the staff
// member's configured salary; the query layer rejects double payment within
// a month.
func PaySalaryAPI(c *fiber.Ctx) error {
	type request struct {
		Amount float64 `json:"amount"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	id := c.Params("id")
	member, err := database.GetStaffByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	amount := req.Amount
	if amount <= 0 {
		amount = member.Salary
	}

	payment, err := database.RecordSalaryPayment(config.GetDB(), id, amount)
	if err != nil {
		if strings.Contains(err.Error(), "already paid") {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[STAFF] Failed to pay salary for %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Salary paid", "payment": payment})
}

func PaymentHistoryAPI(c *fiber.Ctx) error {
	payments, err := database.GetStaffPaymentHistory(config.GetDB())
	if err != nil {
		log.Printf("[STAFF] Failed to list payments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"payments": payments})
}
