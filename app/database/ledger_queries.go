package database

import (
	"database/sql"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// Expense queries

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (description, amount, category, date_str, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, e.Description, e.Amount, e.Category, e.DateStr, e.CreatedBy).
		Scan(&e.ID, &e.CreatedAt)
}

func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	query := `SELECT id, description, amount, category, date_str, created_by, created_at
			  FROM expenses ORDER BY date_str DESC`
	return queryExpenses(db, query)
}

func GetExpensesByMonth(db *sql.DB, year, month int) ([]*models.Expense, error) {
	query := `SELECT id, description, amount, category, date_str, created_by, created_at
			  FROM expenses WHERE date_str LIKE $1 || '-%' ORDER BY date_str DESC`
	return queryExpenses(db, query, dates.MonthPrefix(year, month))
}

func queryExpenses(db *sql.DB, query string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.DateStr, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// GetMonthlyExpenseTotal sums the month's operational expenses.
func GetMonthlyExpenseTotal(db *sql.DB, year, month int) (float64, error) {
	var total float64
	err := db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date_str LIKE $1 || '-%'`,
		dates.MonthPrefix(year, month),
	).Scan(&total)
	return total, err
}

func DeleteExpense(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	return err
}

// Side income queries

func CreateSideIncome(db *sql.DB, s *models.SideIncome) error {
	query := `INSERT INTO side_income (category, amount, description, date_str, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, s.Category, s.Amount, s.Description, s.DateStr, s.CreatedBy).
		Scan(&s.ID, &s.CreatedAt)
}

// GetSideIncomeByMonth lists a month's entries newest first, optionally
// narrowed to one category.
func GetSideIncomeByMonth(db *sql.DB, year, month int, category string) ([]*models.SideIncome, error) {
	query := `SELECT id, category, amount, description, date_str, created_by, created_at
			  FROM side_income WHERE date_str LIKE $1 || '-%'`
	args := []interface{}{dates.MonthPrefix(year, month)}

	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY date_str DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	income := []*models.SideIncome{}
	for rows.Next() {
		s := &models.SideIncome{}
		if err := rows.Scan(&s.ID, &s.Category, &s.Amount, &s.Description, &s.DateStr, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		income = append(income, s)
	}
	return income, rows.Err()
}

// GetSideIncomeTotals aggregates a month's side income per category.
func GetSideIncomeTotals(db *sql.DB, year, month int) (*models.IncomeTotals, error) {
	query := `SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
			  FROM side_income WHERE date_str LIKE $1 || '-%'
			  GROUP BY category`

	rows, err := db.Query(query, dates.MonthPrefix(year, month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := &models.IncomeTotals{}
	for rows.Next() {
		var category models.IncomeCategory
		var t models.IncomeCategoryTotal
		if err := rows.Scan(&category, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		switch category {
		case models.IncomeSnacks:
			totals.Snacks = t
		case models.IncomePaniPuri:
			totals.PaniPuri = t
		case models.IncomeCustom:
			totals.Custom = t
		}
		totals.GrandTotal += t.Total
	}
	return totals, rows.Err()
}

// GetMonthlySideIncomeTotal sums the month's side income.
func GetMonthlySideIncomeTotal(db *sql.DB, year, month int) (float64, error) {
	var total float64
	err := db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM side_income WHERE date_str LIKE $1 || '-%'`,
		dates.MonthPrefix(year, month),
	).Scan(&total)
	return total, err
}

func GetSideIncomeByID(db *sql.DB, id string) (*models.SideIncome, error) {
	s := &models.SideIncome{}
	err := db.QueryRow(
		`SELECT id, category, amount, description, date_str, created_by, created_at
		 FROM side_income WHERE id = $1`, id,
	).Scan(&s.ID, &s.Category, &s.Amount, &s.Description, &s.DateStr, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func UpdateSideIncome(db *sql.DB, s *models.SideIncome) error {
	query := `UPDATE side_income SET category = $1, amount = $2, description = $3, date_str = $4
			  WHERE id = $5`
	result, err := db.Exec(query, s.Category, s.Amount, s.Description, s.DateStr, s.ID)
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

func DeleteSideIncome(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM side_income WHERE id = $1`, id)
	return err
}
