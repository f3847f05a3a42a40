package database

import (
	"database/sql"
	"log"
	"sort"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// GetDashboardStats assembles the owner dashboard numbers. Each figure is
// queried separately and degrades to zero on failure so one broken
// aggregation never blanks the whole page.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	now := dates.Now()
	year, month := now.Year(), int(now.Month())

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM users WHERE role = 'STUDENT' AND status = 'ACTIVE' AND is_deleted = false`,
	).Scan(&stats.Students); err != nil {
		log.Printf("Dashboard: failed to get student count: %v", err)
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM staff WHERE status = 'ACTIVE'`,
	).Scan(&stats.Staff); err != nil {
		log.Printf("Dashboard: failed to get staff count: %v", err)
	}

	if err := db.QueryRow(
		`SELECT COALESCE(SUM(final_amount), 0) FROM bills WHERE status = 'PAID'`,
	).Scan(&stats.BillRevenue); err != nil {
		log.Printf("Dashboard: failed to get revenue: %v", err)
	}

	if err := db.QueryRow(
		`SELECT COALESCE(SUM(final_amount), 0) FROM bills WHERE status = 'PENDING'`,
	).Scan(&stats.Pending); err != nil {
		log.Printf("Dashboard: failed to get pending total: %v", err)
	}

	// Fixed monthly outgoings: salaries of active staff
	if err := db.QueryRow(
		`SELECT COALESCE(SUM(salary), 0) FROM staff WHERE status = 'ACTIVE'`,
	).Scan(&stats.FixedExpense); err != nil {
		log.Printf("Dashboard: failed to get fixed expense: %v", err)
	}

	if total, err := GetMonthlyExpenseTotal(db, year, month); err != nil {
		log.Printf("Dashboard: failed to get operational expenses: %v", err)
	} else {
		stats.OperationalExpense = total
	}

	if total, err := GetMonthlySideIncomeTotal(db, year, month); err != nil {
		log.Printf("Dashboard: failed to get side income: %v", err)
	} else {
		stats.SideIncome = total
	}

	stats.Expense = stats.FixedExpense + stats.OperationalExpense
	stats.Revenue = stats.BillRevenue + stats.SideIncome
	stats.NetIncome = stats.Revenue - stats.Expense
	return stats, nil
}

// GetMonthlyBillStats rolls bills up per (month, year) and returns the six
// most recent months, newest first.
func GetMonthlyBillStats(db *sql.DB) ([]models.MonthlyBillStats, error) {
	query := `SELECT month, year,
			  COALESCE(SUM(CASE WHEN status = 'PAID' THEN final_amount ELSE 0 END), 0),
			  COALESCE(SUM(CASE WHEN status = 'PENDING' THEN final_amount ELSE 0 END), 0),
			  COUNT(*)
			  FROM bills GROUP BY month, year`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.MonthlyBillStats{}
	for rows.Next() {
		var s models.MonthlyBillStats
		if err := rows.Scan(&s.Month, &s.Year, &s.Revenue, &s.Pending, &s.TotalBills); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Month names sort by calendar position, not alphabetically.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Year != stats[j].Year {
			return stats[i].Year > stats[j].Year
		}
		return dates.MonthNumbers[stats[i].Month] > dates.MonthNumbers[stats[j].Month]
	})

	if len(stats) > 6 {
		stats = stats[:6]
	}
	return stats, nil
}
