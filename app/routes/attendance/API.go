package attendance

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/services"
)

// optionalStatus distinguishes three cases in the mark payload: field absent
// (leave the stored value untouched), explicit null (shift not applicable),
// and a PRESENT/ABSENT value.
type optionalStatus struct {
	Set   bool
	Value *models.MealStatus
}

func (o *optionalStatus) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s models.MealStatus
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s != models.MealPresent && s != models.MealAbsent {
		return fmt.Errorf("invalid meal status %q", s)
	}
	o.Value = &s
	return nil
}

// DailyRegisterAPI returns the day's marked records joined with student info.
func DailyRegisterAPI(c *fiber.Ctx) error {
	dateStr := c.Query("date", dates.TodayStr())
	if !dates.IsValidDateStr(dateStr) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByDate(config.GetDB(), dateStr)
	if err != nil {
		log.Printf("[ATTENDANCE] Failed to load register for %s: %v", dateStr, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	isHoliday, err := database.HolidayExists(config.GetDB(), dateStr)
	if err != nil {
		log.Printf("[ATTENDANCE] Failed to check holiday for %s: %v", dateStr, err)
	}

	return c.JSON(fiber.Map{
		"date":       dateStr,
		"isHoliday":  isHoliday,
		"attendance": records,
	})
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	type entry struct {
		StudentID       string         `json:"studentId"`
		AfternoonStatus optionalStatus `json:"afternoonStatus"`
		NightStatus     optionalStatus `json:"nightStatus"`
	}
	type request struct {
		Date    string  `json:"date"`
		Entries []entry `json:"entries"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request: " + err.Error()})
	}
	if req.Date == "" {
		req.Date = dates.TodayStr()
	}
	if !dates.IsValidDateStr(req.Date) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}
	if req.Date > dates.TodayStr() {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot mark attendance for future dates"})
	}
	if len(req.Entries) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No entries provided"})
	}

	marked := 0
	failed := []string{}
	for _, e := range req.Entries {
		if e.StudentID == "" {
			continue
		}
		_, err := database.MarkAttendance(config.GetDB(), e.StudentID, req.Date,
			e.AfternoonStatus.Value, e.AfternoonStatus.Set,
			e.NightStatus.Value, e.NightStatus.Set)
		if err != nil {
			log.Printf("[ATTENDANCE] Failed to mark %s on %s: %v", e.StudentID, req.Date, err)
			failed = append(failed, e.StudentID)
			continue
		}
		marked++
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Marked attendance for %d students", marked),
		"date":    req.Date,
		"marked":  marked,
		"failed":  failed,
	})
}

// StudentHistoryAPI returns one student's month of attendance plus the
// month's holidays so the client can render the calendar in one request.
func StudentHistoryAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	year, month, err := monthQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := database.GetStudentMonthAttendance(config.GetDB(), studentID, year, month)
	if err != nil {
		log.Printf("[ATTENDANCE] Failed to load history for %s: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	holidays, _, err := database.GetMonthHolidays(config.GetDB(), year, month)
	if err != nil {
		log.Printf("[ATTENDANCE] Failed to load holidays: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}

	return c.JSON(fiber.Map{
		"month":      dates.MonthName(month),
		"year":       year,
		"attendance": records,
		"holidays":   holidays,
	})
}

// MissingDatesAPI lists the month's past dates with no attendance at all.
func MissingDatesAPI(c *fiber.Ctx) error {
	year, month, err := monthQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	marked, err := database.GetMarkedDates(config.GetDB(), year, month)
	if err != nil {
		log.Printf("[ATTENDANCE] Failed to load marked dates: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	_, holidays, err := database.GetMonthHolidays(config.GetDB(), year, month)
	if err != nil {
		log.Printf("[ATTENDANCE] Failed to load holidays: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}

	missing := services.MissingAttendanceDates(marked, holidays, year, month, dates.TodayStr())
	return c.JSON(fiber.Map{
		"month":   dates.MonthName(month),
		"year":    year,
		"missing": missing,
	})
}

// monthQuery reads month/year query params, defaulting to the current month.
func monthQuery(c *fiber.Ctx) (year, month int, err error) {
	now := dates.Now()
	year = c.QueryInt("year", now.Year())
	month = c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %d", month)
	}
	if year < 2000 || year > 2100 {
		return 0, 0, fmt.Errorf("invalid year %d", year)
	}
	return year, month, nil
}
