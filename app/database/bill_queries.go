package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// GetPaidStudentIDs returns the set of students who already hold a PAID bill
// for the month; the generator must never touch those.
func GetPaidStudentIDs(db *sql.DB, month string, year int) (map[string]bool, error) {
	query := `SELECT student_id FROM bills WHERE month = $1 AND year = $2 AND status = 'PAID'`

	rows, err := db.Query(query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paid := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		paid[id] = true
	}
	return paid, rows.Err()
}

// DeletePendingBills removes every non-PAID bill for the month ahead of
// regeneration.
func DeletePendingBills(db *sql.DB, month string, year int) error {
	_, err := db.Exec(`DELETE FROM bills WHERE month = $1 AND year = $2 AND status <> 'PAID'`, month, year)
	return err
}

func CreateBill(db *sql.DB, b *models.Bill) error {
	breakdown, err := json.Marshal(b.Breakdown)
	if err != nil {
		return err
	}

	query := `INSERT INTO bills (student_id, month, year, base_amount, rebate_amount,
			  final_amount, status, breakdown, generated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			  RETURNING id, generated_at`

	return db.QueryRow(query,
		b.StudentID, b.Month, b.Year, b.BaseAmount, b.RebateAmount,
		b.FinalAmount, b.Status, breakdown,
	).Scan(&b.ID, &b.GeneratedAt)
}

// BillFilters narrows a bill listing.
type BillFilters struct {
	StudentID string
	Status    string
	Month     string
	Year      int
}

// GetBills lists bills joined with student display fields, sorted by student
// name then newest generation first. Deleted students are excluded.
func GetBills(db *sql.DB, f BillFilters) ([]*models.BillWithStudent, error) {
	query := `SELECT b.id, b.student_id, b.month, b.year, b.base_amount, b.rebate_amount,
			  b.final_amount, b.status, b.breakdown, b.generated_at, b.payment_reference, b.paid_at,
			  u.name, u.mobile, u.meal_slot
			  FROM bills b
			  JOIN users u ON b.student_id = u.id
			  WHERE u.role = 'STUDENT' AND u.is_deleted = false`

	args := []interface{}{}
	argIndex := 1

	if f.StudentID != "" {
		query += fmt.Sprintf(" AND b.student_id = $%d", argIndex)
		args = append(args, f.StudentID)
		argIndex++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND b.status = $%d", argIndex)
		args = append(args, f.Status)
		argIndex++
	}
	if f.Month != "" {
		query += fmt.Sprintf(" AND b.month = $%d", argIndex)
		args = append(args, f.Month)
		argIndex++
	}
	if f.Year > 0 {
		query += fmt.Sprintf(" AND b.year = $%d", argIndex)
		args = append(args, f.Year)
		argIndex++
	}

	query += " ORDER BY u.name ASC, b.generated_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := []*models.BillWithStudent{}
	for rows.Next() {
		b := &models.BillWithStudent{}
		var breakdown []byte
		if err := rows.Scan(
			&b.ID, &b.StudentID, &b.Month, &b.Year, &b.BaseAmount, &b.RebateAmount,
			&b.FinalAmount, &b.Status, &breakdown, &b.GeneratedAt, &b.PaymentReference, &b.PaidAt,
			&b.StudentName, &b.StudentMobile, &b.MealSlot,
		); err != nil {
			return nil, err
		}
		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &b.Breakdown); err != nil {
				return nil, err
			}
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// GetBillByID fetches one bill with its student fields.
func GetBillByID(db *sql.DB, id string) (*models.BillWithStudent, error) {
	query := `SELECT b.id, b.student_id, b.month, b.year, b.base_amount, b.rebate_amount,
			  b.final_amount, b.status, b.breakdown, b.generated_at, b.payment_reference, b.paid_at,
			  u.name, u.mobile, u.meal_slot
			  FROM bills b
			  JOIN users u ON b.student_id = u.id
			  WHERE b.id = $1`

	b := &models.BillWithStudent{}
	var breakdown []byte
	err := db.QueryRow(query, id).Scan(
		&b.ID, &b.StudentID, &b.Month, &b.Year, &b.BaseAmount, &b.RebateAmount,
		&b.FinalAmount, &b.Status, &breakdown, &b.GeneratedAt, &b.PaymentReference, &b.PaidAt,
		&b.StudentName, &b.StudentMobile, &b.MealSlot,
	)
	if err != nil {
		return nil, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &b.Breakdown); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// MarkBillPaid flips a bill to PAID and stamps the payment reference and
// timestamp. The status guard makes the transition atomic: a bill that is
// already PAID matches zero rows and comes back as sql.ErrNoRows, so a
// concurrent second payment can never overwrite the first reference.
func MarkBillPaid(db *sql.DB, id, transactionRef string) (*models.Bill, error) {
	query := `UPDATE bills SET status = 'PAID', payment_reference = $1, paid_at = $2
			  WHERE id = $3 AND status <> 'PAID'
			  RETURNING id, student_id, month, year, base_amount, rebate_amount,
			  final_amount, status, breakdown, generated_at, payment_reference, paid_at`

	b := &models.Bill{}
	var breakdown []byte
	err := db.QueryRow(query, transactionRef, time.Now(), id).Scan(
		&b.ID, &b.StudentID, &b.Month, &b.Year, &b.BaseAmount, &b.RebateAmount,
		&b.FinalAmount, &b.Status, &breakdown, &b.GeneratedAt, &b.PaymentReference, &b.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &b.Breakdown); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// CreateAuditLog records an administrative action.
func CreateAuditLog(db *sql.DB, entry *models.AuditLog) error {
	query := `INSERT INTO audit_logs (user_id, action, table_name, record_id, new_values, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, entry.UserID, entry.Action, entry.TableName, entry.RecordID, []byte(entry.NewValues)).
		Scan(&entry.ID, &entry.CreatedAt)
}
