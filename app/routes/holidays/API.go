package holidays

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// ListHolidaysAPI lists holidays, optionally narrowed by month/year query
// params. Year alone filters the year; month requires year.
func ListHolidaysAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if month != 0 && (month < 1 || month > 12 || year == 0) {
		return c.Status(400).JSON(fiber.Map{"error": "Month filter requires a valid month and year"})
	}

	holidays, err := database.GetHolidays(config.GetDB(), year, month)
	if err != nil {
		log.Printf("[HOLIDAYS] Failed to list holidays: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}
	return c.JSON(fiber.Map{"holidays": holidays})
}

func AddHolidayAPI(c *fiber.Ctx) error {
	type request struct {
		Name string `json:"name"`
		Date string `json:"date"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}
	if !dates.IsValidDateStr(req.Date) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	holiday := &models.Holiday{Name: req.Name, DateStr: req.Date}
	if err := database.CreateHoliday(config.GetDB(), holiday); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(400).JSON(fiber.Map{"error": "A holiday already exists on this date"})
		}
		log.Printf("[HOLIDAYS] Failed to create holiday: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create holiday"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Holiday added", "holiday": holiday})
}

func DeleteHolidayAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.DeleteHoliday(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Holiday not found"})
		}
		log.Printf("[HOLIDAYS] Failed to delete holiday %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete holiday"})
	}

	return c.JSON(fiber.Map{"message": "Holiday removed"})
}
