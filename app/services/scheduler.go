package services

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := dates.Now()

			// Trigger at 9:00 PM, after the night meal register is closed
			if now.Hour() == 21 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [21:00]...")

				if err := ReportMissingAttendance(db); err != nil {
					log.Printf("Error reporting missing attendance: %v", err)
				}
			}
		}
	}()
}

// ReportMissingAttendance logs the current month's unmarked dates so the
// operator knows what to backfill.
func ReportMissingAttendance(db *sql.DB) error {
	now := dates.Now()
	year, month := now.Year(), int(now.Month())

	marked, err := database.GetMarkedDates(db, year, month)
	if err != nil {
		return err
	}
	_, holidays, err := database.GetMonthHolidays(db, year, month)
	if err != nil {
		return err
	}

	missing := MissingAttendanceDates(marked, holidays, year, month, dates.TodayStr())
	if len(missing) == 0 {
		log.Printf("[SCHEDULER] Attendance fully marked for %s", dates.MonthPrefix(year, month))
		return nil
	}
	log.Printf("[SCHEDULER] %d dates missing attendance in %s: %s",
		len(missing), dates.MonthPrefix(year, month), strings.Join(missing, ", "))
	return nil
}
