package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies any
// incremental updates. All date columns that participate in comparisons are
// VARCHAR(10) YYYY-MM-DD strings on purpose; see app/dates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			mobile VARCHAR(20) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(10) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'ACTIVE',
			monthly_fee NUMERIC NOT NULL DEFAULT 0,
			payment_mode VARCHAR(10) NOT NULL DEFAULT 'PREPAID',
			daily_rate NUMERIC NOT NULL DEFAULT 0,
			mess_type VARCHAR(10) NOT NULL DEFAULT 'STANDARD',
			joined_at VARCHAR(10),
			meals_per_day INT NOT NULL DEFAULT 2,
			meal_slot VARCHAR(10) NOT NULL DEFAULT 'BOTH',
			advance_balance NUMERIC NOT NULL DEFAULT 0,
			is_deleted BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			date_str VARCHAR(10) NOT NULL UNIQUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date_str VARCHAR(10) NOT NULL,
			afternoon_status VARCHAR(10),
			night_status VARCHAR(10),
			UNIQUE (student_id, date_str)
		)`,
		`CREATE TABLE IF NOT EXISTS bills (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			month VARCHAR(10) NOT NULL,
			year INT NOT NULL,
			base_amount NUMERIC NOT NULL,
			rebate_amount NUMERIC NOT NULL DEFAULT 0,
			final_amount NUMERIC NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
			breakdown JSONB,
			generated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			payment_reference VARCHAR(255),
			paid_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			role VARCHAR(100) NOT NULL,
			salary NUMERIC NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS staff_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
			amount NUMERIC NOT NULL,
			payment_date_str VARCHAR(10) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			description VARCHAR(255) NOT NULL,
			amount NUMERIC NOT NULL,
			category VARCHAR(15) NOT NULL DEFAULT 'OTHER',
			date_str VARCHAR(10) NOT NULL,
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS side_income (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category VARCHAR(10) NOT NULL,
			amount NUMERIC NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date_str VARCHAR(10) NOT NULL,
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID,
			action VARCHAR(100) NOT NULL,
			table_name VARCHAR(100) NOT NULL,
			record_id VARCHAR(100),
			new_values JSONB,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		// mobile unique only among non-deleted accounts, mirrors soft delete
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_mobile_live ON users(mobile) WHERE is_deleted = false`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date_str ON attendance(date_str)`,
		`CREATE INDEX IF NOT EXISTS idx_bills_month_year ON bills(month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date_str ON expenses(date_str)`,
		`CREATE INDEX IF NOT EXISTS idx_side_income_date_str ON side_income(date_str)`,
		`CREATE INDEX IF NOT EXISTS idx_staff_payments_date_str ON staff_payments(payment_date_str)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running index migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
