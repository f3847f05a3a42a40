package database

import (
	"database/sql"
	"fmt"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

func GetAllStaff(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT id, name, role, salary, status, created_at FROM staff ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		s := &models.Staff{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Salary, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func GetStaffByID(db *sql.DB, id string) (*models.Staff, error) {
	s := &models.Staff{}
	err := db.QueryRow(
		`SELECT id, name, role, salary, status, created_at FROM staff WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Role, &s.Salary, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStaff(db *sql.DB, s *models.Staff) error {
	query := `INSERT INTO staff (name, role, salary, status, created_at)
			  VALUES ($1, $2, $3, 'ACTIVE', NOW())
			  RETURNING id, status, created_at`
	return db.QueryRow(query, s.Name, s.Role, s.Salary).Scan(&s.ID, &s.Status, &s.CreatedAt)
}

func UpdateStaff(db *sql.DB, s *models.Staff) error {
	query := `UPDATE staff SET name = $1, role = $2, salary = $3, status = $4 WHERE id = $5`
	result, err := db.Exec(query, s.Name, s.Role, s.Salary, s.Status, s.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteStaff(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM staff WHERE id = $1`, id)
	return err
}

// RecordSalaryPayment creates a salary payment dated today, rejecting a
// second payment for the same staff member within the current civil month.
func RecordSalaryPayment(db *sql.DB, staffID string, amount float64) (*models.StaffPayment, error) {
	now := dates.Now()
	prefix := dates.MonthPrefix(now.Year(), int(now.Month()))

	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM staff_payments WHERE staff_id = $1 AND payment_date_str LIKE $2 || '-%')`,
		staffID, prefix,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("salary already paid for %s %d", dates.MonthName(int(now.Month())), now.Year())
	}

	p := &models.StaffPayment{StaffID: staffID, Amount: amount, PaymentDateStr: dates.TodayStr()}
	query := `INSERT INTO staff_payments (staff_id, amount, payment_date_str)
			  VALUES ($1, $2, $3) RETURNING id`
	if err := db.QueryRow(query, p.StaffID, p.Amount, p.PaymentDateStr).Scan(&p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// GetStaffPaymentHistory lists payments newest first with staff names.
func GetStaffPaymentHistory(db *sql.DB) ([]*models.StaffPaymentWithName, error) {
	query := `SELECT p.id, p.staff_id, p.amount, p.payment_date_str, COALESCE(s.name, 'Unknown')
			  FROM staff_payments p
			  LEFT JOIN staff s ON p.staff_id = s.id
			  ORDER BY p.payment_date_str DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.StaffPaymentWithName{}
	for rows.Next() {
		p := &models.StaffPaymentWithName{}
		if err := rows.Scan(&p.ID, &p.StaffID, &p.Amount, &p.PaymentDateStr, &p.StaffName); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
