package students

import (
	"database/sql"
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/routes/auth"
)

var validate = validator.New()

// messTypeFor mirrors the fee fields derived from a slot choice.
func messTypeFor(slot models.MealSlot) string {
	if slot == models.SlotBoth {
		return "FULL"
	}
	return "SINGLE"
}

func ListStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		log.Printf("[STUDENTS] Failed to list students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

// EligibleStudentsAPI lists the students enrolled on or before the given date,
// for building that day's attendance register.
func EligibleStudentsAPI(c *fiber.Ctx) error {
	dateStr := c.Query("date", dates.TodayStr())
	if !dates.IsValidDateStr(dateStr) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	students, err := database.GetStudentsJoinedBy(config.GetDB(), dateStr)
	if err != nil {
		log.Printf("[STUDENTS] Failed to list eligible students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"students": students, "date": dateStr})
}

type studentRequest struct {
	Name       string  `json:"name" validate:"required"`
	Mobile     string  `json:"mobile" validate:"required,len=10,numeric"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   string  `json:"password"`
	MealSlot   string  `json:"mealSlot" validate:"omitempty,oneof=AFTERNOON NIGHT BOTH"`
	MonthlyFee float64 `json:"monthlyFee" validate:"omitempty,gte=0"`
	JoinedAt   string  `json:"joinedAt" validate:"omitempty,len=10"`
}

func AddStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.JoinedAt != "" && !dates.IsValidDateStr(req.JoinedAt) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid joinedAt, expected YYYY-MM-DD"})
	}

	slot := models.MealSlot(req.MealSlot)
	if slot == "" {
		slot = models.SlotBoth
	}
	fee := req.MonthlyFee
	if fee == 0 {
		fee = models.MealRates[slot]
	}
	joinedAt := req.JoinedAt
	if joinedAt == "" {
		joinedAt = dates.TodayStr()
	}
	password := req.Password
	if password == "" {
		// Students log in with their mobile number by default.
		password = req.Mobile
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		Status:       models.StatusActive,
		MonthlyFee:   fee,
		PaymentMode:  "PREPAID",
		DailyRate:    math.Round(fee / 30),
		MessType:     messTypeFor(slot),
		JoinedAt:     joinedAt,
		MealSlot:     slot,
		MealsPerDay:  slot.MealsPerDay(),
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(400).JSON(fiber.Map{"error": "A student with this mobile already exists"})
		}
		log.Printf("[STUDENTS] Failed to create student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Student added", "student": user})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := database.GetUserByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.JoinedAt != "" {
		if !dates.IsValidDateStr(req.JoinedAt) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid joinedAt, expected YYYY-MM-DD"})
		}
		user.JoinedAt = req.JoinedAt
	}
	if req.MealSlot != "" {
		if !models.IsValidMealSlot(req.MealSlot) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid meal slot"})
		}
		user.MealSlot = models.MealSlot(req.MealSlot)
		user.MealsPerDay = user.MealSlot.MealsPerDay()
		// A slot change resets the fee unless an explicit fee accompanies it.
		if req.MonthlyFee == 0 {
			user.MonthlyFee = models.MealRates[user.MealSlot]
		}
	}
	if req.MonthlyFee > 0 {
		user.MonthlyFee = req.MonthlyFee
	}
	user.DailyRate = math.Round(user.MonthlyFee / 30)
	user.MessType = messTypeFor(user.MealSlot)
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.PasswordHash = hash
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("[STUDENTS] Failed to update student %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"message": "Student updated", "student": user})
}

// DeleteStudentAPI soft-deletes so historical bills and attendance keep their
// student reference.
func DeleteStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.SoftDeleteUser(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("[STUDENTS] Failed to delete student %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student removed"})
}
