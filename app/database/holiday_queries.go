package database

import (
	"database/sql"
	"fmt"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// GetHolidays lists holidays, optionally narrowed to a year or a year+month,
// newest first.
func GetHolidays(db *sql.DB, year, month int) ([]*models.Holiday, error) {
	query := `SELECT id, name, date_str, created_at FROM holidays`
	args := []interface{}{}

	if year > 0 && month > 0 {
		query += ` WHERE date_str LIKE $1 || '-%'`
		args = append(args, dates.MonthPrefix(year, month))
	} else if year > 0 {
		query += ` WHERE date_str LIKE $1 || '-%'`
		args = append(args, fmt.Sprintf("%04d", year))
	}
	query += ` ORDER BY date_str DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []*models.Holiday{}
	for rows.Next() {
		h := &models.Holiday{}
		if err := rows.Scan(&h.ID, &h.Name, &h.DateStr, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// GetMonthHolidays returns the month's holidays plus a date set for O(1)
// lookups during billing.
func GetMonthHolidays(db *sql.DB, year, month int) ([]*models.Holiday, map[string]bool, error) {
	holidays, err := GetHolidays(db, year, month)
	if err != nil {
		return nil, nil, err
	}
	set := map[string]bool{}
	for _, h := range holidays {
		set[h.DateStr] = true
	}
	return holidays, set, nil
}

func HolidayExists(db *sql.DB, dateStr string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM holidays WHERE date_str = $1)`, dateStr).Scan(&exists)
	return exists, err
}

func CreateHoliday(db *sql.DB, h *models.Holiday) error {
	query := `INSERT INTO holidays (name, date_str, created_at) VALUES ($1, $2, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, h.Name, h.DateStr).Scan(&h.ID, &h.CreatedAt)
}

func DeleteHoliday(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM holidays WHERE id = $1`, id)
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
