package database

import (
	"database/sql"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

const userColumns = `id, name, email, mobile, password_hash, role, status,
	monthly_fee, payment_mode, daily_rate, mess_type, COALESCE(joined_at, ''),
	meals_per_day, meal_slot, advance_balance, is_deleted, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Mobile, &u.PasswordHash, &u.Role, &u.Status,
		&u.MonthlyFee, &u.PaymentMode, &u.DailyRate, &u.MessType, &u.JoinedAt,
		&u.MealsPerDay, &u.MealSlot, &u.AdvanceBalance, &u.IsDeleted,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByMobile(db *sql.DB, mobile string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE mobile = $1 AND is_deleted = false`
	return scanUser(db.QueryRow(query, mobile))
}

func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.QueryRow(query, id))
}

// GetAllStudents returns every non-deleted student sorted by name.
func GetAllStudents(db *sql.DB) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE role = 'STUDENT' AND is_deleted = false
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, u)
	}
	return students, rows.Err()
}

// GetBillableStudents returns ACTIVE non-deleted students sorted by name,
// the cohort eligible for monthly bill generation.
func GetBillableStudents(db *sql.DB) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE role = 'STUDENT' AND status = 'ACTIVE' AND is_deleted = false
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, u)
	}
	return students, rows.Err()
}

// GetStudentsJoinedBy returns ACTIVE students whose join date is on or before
// the given date string. Students with no join date recorded are included.
func GetStudentsJoinedBy(db *sql.DB, dateStr string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE role = 'STUDENT' AND status = 'ACTIVE' AND is_deleted = false
			  AND (joined_at IS NULL OR joined_at = '' OR joined_at <= $1)
			  ORDER BY name ASC`

	rows, err := db.Query(query, dateStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, u)
	}
	return students, rows.Err()
}

func CreateUser(db *sql.DB, u *models.User) error {
	query := `INSERT INTO users (name, email, mobile, password_hash, role, status,
			  monthly_fee, payment_mode, daily_rate, mess_type, joined_at,
			  meals_per_day, meal_slot, advance_balance, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		u.Name, u.Email, u.Mobile, u.PasswordHash, u.Role, u.Status,
		u.MonthlyFee, u.PaymentMode, u.DailyRate, u.MessType, u.JoinedAt,
		u.MealsPerDay, u.MealSlot, u.AdvanceBalance,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func UpdateUser(db *sql.DB, u *models.User) error {
	query := `UPDATE users SET name = $1, email = $2, mobile = $3, status = $4,
			  monthly_fee = $5, daily_rate = $6, mess_type = $7, joined_at = $8,
			  meals_per_day = $9, meal_slot = $10, password_hash = $11, updated_at = NOW()
			  WHERE id = $12`

	result, err := db.Exec(query,
		u.Name, u.Email, u.Mobile, u.Status,
		u.MonthlyFee, u.DailyRate, u.MessType, u.JoinedAt,
		u.MealsPerDay, u.MealSlot, u.PasswordHash, u.ID,
	)
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

// SoftDeleteUser marks the account deleted and inactive; bills and
// attendance history stay intact.
func SoftDeleteUser(db *sql.DB, id string) error {
	query := `UPDATE users SET is_deleted = true, status = 'INACTIVE', updated_at = NOW()
			  WHERE id = $1 AND is_deleted = false`
	result, err := db.Exec(query, id)
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
