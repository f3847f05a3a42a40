package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// ValidationError marks a request problem detected before any writes; the
// handler maps it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// billingStore is the slice of the query layer a generation run touches.
type billingStore interface {
	MonthHolidays(year, month int) ([]*models.Holiday, map[string]bool, error)
	BillableStudents() ([]*models.User, error)
	PaidStudentIDs(month string, year int) (map[string]bool, error)
	DeletePendingBills(month string, year int) error
	StudentMonthAttendance(studentID string, year, month int) ([]*models.Attendance, error)
	InsertBill(b *models.Bill) error
	WriteAuditLog(e *models.AuditLog) error
}

type sqlBillingStore struct {
	db *sql.DB
}

func (s *sqlBillingStore) MonthHolidays(year, month int) ([]*models.Holiday, map[string]bool, error) {
	return database.GetMonthHolidays(s.db, year, month)
}

func (s *sqlBillingStore) BillableStudents() ([]*models.User, error) {
	return database.GetBillableStudents(s.db)
}

func (s *sqlBillingStore) PaidStudentIDs(month string, year int) (map[string]bool, error) {
	return database.GetPaidStudentIDs(s.db, month, year)
}

func (s *sqlBillingStore) DeletePendingBills(month string, year int) error {
	return database.DeletePendingBills(s.db, month, year)
}

func (s *sqlBillingStore) StudentMonthAttendance(studentID string, year, month int) ([]*models.Attendance, error) {
	return database.GetStudentMonthAttendance(s.db, studentID, year, month)
}

func (s *sqlBillingStore) InsertBill(b *models.Bill) error {
	return database.CreateBill(s.db, b)
}

func (s *sqlBillingStore) WriteAuditLog(e *models.AuditLog) error {
	return database.CreateAuditLog(s.db, e)
}

// GenerateMonthlyBills regenerates the month's bills: deletes PENDING bills,
// recomputes one per eligible student, and never touches PAID bills.
func GenerateMonthlyBills(db *sql.DB, monthName string, year int, requestedBy *string) (*models.BillRunSummary, error) {
	return generateBills(&sqlBillingStore{db: db}, monthName, year, requestedBy)
}

// generateBills validates the request, then runs the batch. A failure
// computing or inserting one student's bill is logged and skipped so a single
// bad record cannot block the cohort.
func generateBills(store billingStore, monthName string, year int, requestedBy *string) (*models.BillRunSummary, error) {
	monthNum, ok := dates.MonthNumbers[monthName]
	if !ok {
		return nil, &ValidationError{Message: "Invalid month name"}
	}

	now := dates.Now()
	if year > now.Year() || (year == now.Year() && monthNum > int(now.Month())) {
		return nil, &ValidationError{Message: "Cannot generate bills for future months."}
	}

	holidays, holidayDates, err := store.MonthHolidays(year, monthNum)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidayCount := len(holidays)

	students, err := store.BillableStudents()
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}

	paidStudents, err := store.PaidStudentIDs(monthName, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bills: %w", err)
	}

	// Clear stale PENDING bills before inserting the new batch. PAID bills
	// survive regeneration unconditionally.
	if err := store.DeletePendingBills(monthName, year); err != nil {
		return nil, fmt.Errorf("failed to clear pending bills: %w", err)
	}

	summary := &models.BillRunSummary{HolidaysInMonth: holidayCount}

	for _, student := range students {
		if paidStudents[student.ID] {
			summary.SkippedPaid++
			continue
		}

		attendance, err := store.StudentMonthAttendance(student.ID, year, monthNum)
		if err != nil {
			log.Printf("[BILLING] Skipping %s: failed to load attendance: %v", student.Name, err)
			continue
		}

		bill := ComputeStudentBill(BillInput{
			Student:      student,
			Attendance:   attendance,
			HolidayDates: holidayDates,
			HolidayCount: holidayCount,
			Year:         year,
			MonthNum:     monthNum,
		})
		if bill == nil {
			// Joined after the billing month ended.
			continue
		}
		// Keep the caller's month spelling on the stored row.
		bill.Month = monthName

		if err := store.InsertBill(bill); err != nil {
			log.Printf("[BILLING] Skipping %s: failed to insert bill: %v", student.Name, err)
			continue
		}
		summary.NewBills++
	}

	auditRun(store, requestedBy, monthName, year, summary)

	log.Printf("[BILLING] Generated %d bills for %s %d (skipped %d paid, %d holidays)",
		summary.NewBills, monthName, year, summary.SkippedPaid, holidayCount)
	return summary, nil
}

func auditRun(store billingStore, userID *string, monthName string, year int, summary *models.BillRunSummary) {
	values, err := json.Marshal(map[string]interface{}{
		"month":           monthName,
		"year":            year,
		"newBills":        summary.NewBills,
		"skippedPaid":     summary.SkippedPaid,
		"holidaysInMonth": summary.HolidaysInMonth,
	})
	if err != nil {
		return
	}
	entry := &models.AuditLog{
		UserID:    userID,
		Action:    "GENERATED_BILLS",
		TableName: "bills",
		RecordID:  "0",
		NewValues: values,
	}
	if err := store.WriteAuditLog(entry); err != nil {
		// The run already succeeded; a missing audit row is not worth failing it.
		log.Printf("[BILLING] Failed to write audit log: %v", err)
	}
}
