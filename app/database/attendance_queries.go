package database

import (
	"database/sql"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// MarkAttendance upserts the (student, date) record, touching only the shift
// fields that were provided. A nil pointer inside a provided field stores
// NULL (not applicable); a field that was not provided at all leaves any
// existing value unchanged.
func MarkAttendance(db *sql.DB, studentID, dateStr string, afternoon *models.MealStatus, afternoonSet bool, night *models.MealStatus, nightSet bool) (*models.Attendance, error) {
	// Build the upsert so omitted fields keep whatever the row already holds.
	afternoonExpr := "attendance.afternoon_status"
	nightExpr := "attendance.night_status"
	if afternoonSet {
		afternoonExpr = "EXCLUDED.afternoon_status"
	}
	if nightSet {
		nightExpr = "EXCLUDED.night_status"
	}

	query := `INSERT INTO attendance (student_id, date_str, afternoon_status, night_status)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (student_id, date_str) DO UPDATE SET
			  afternoon_status = ` + afternoonExpr + `,
			  night_status = ` + nightExpr + `
			  RETURNING id, student_id, date_str, afternoon_status, night_status`

	a := &models.Attendance{}
	err := db.QueryRow(query, studentID, dateStr, statusArg(afternoon), statusArg(night)).Scan(
		&a.ID, &a.StudentID, &a.DateStr, &a.AfternoonStatus, &a.NightStatus,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func statusArg(s *models.MealStatus) interface{} {
	if s == nil {
		return nil
	}
	return string(*s)
}

// GetAttendanceByDate returns the full register for one date with student
// display fields joined in.
func GetAttendanceByDate(db *sql.DB, dateStr string) ([]*models.AttendanceWithStudent, error) {
	query := `SELECT a.id, a.student_id, a.date_str, a.afternoon_status, a.night_status,
			  u.name, u.mobile, u.meal_slot
			  FROM attendance a
			  JOIN users u ON a.student_id = u.id
			  WHERE a.date_str = $1
			  ORDER BY u.name ASC`

	rows, err := db.Query(query, dateStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.AttendanceWithStudent{}
	for rows.Next() {
		r := &models.AttendanceWithStudent{}
		if err := rows.Scan(&r.ID, &r.StudentID, &r.DateStr, &r.AfternoonStatus, &r.NightStatus,
			&r.StudentName, &r.StudentMobile, &r.MealSlot); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetStudentMonthAttendance returns a student's records for a month, sorted
// by date string.
func GetStudentMonthAttendance(db *sql.DB, studentID string, year, month int) ([]*models.Attendance, error) {
	prefix := dates.MonthPrefix(year, month)
	query := `SELECT id, student_id, date_str, afternoon_status, night_status
			  FROM attendance
			  WHERE student_id = $1 AND date_str LIKE $2 || '-%'
			  ORDER BY date_str ASC`

	rows, err := db.Query(query, studentID, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.DateStr, &a.AfternoonStatus, &a.NightStatus); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetMarkedDates returns the distinct dates in a month that have at least
// one attendance record.
func GetMarkedDates(db *sql.DB, year, month int) (map[string]bool, error) {
	prefix := dates.MonthPrefix(year, month)
	query := `SELECT DISTINCT date_str FROM attendance WHERE date_str LIKE $1 || '-%'`

	rows, err := db.Query(query, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marked := map[string]bool{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		marked[d] = true
	}
	return marked, rows.Err()
}
