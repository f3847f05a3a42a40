package models

import "time"

// AbsentEntry is one date with at least one missed shift, labeled
// "Afternoon", "Night" or "Both".
type AbsentEntry struct {
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

// BillBreakdown is the snapshot persisted with every bill. It carries enough
// detail to render a statement or PDF later without recomputing anything
// from attendance.
type BillBreakdown struct {
	BillMethod      BillMethod    `json:"bill_method"`
	MonthlyFee      float64       `json:"monthly_fee"`
	MealSlot        MealSlot      `json:"meal_slot"`
	MealsPerDay     int           `json:"meals_per_day"`
	DaysInMonth     int           `json:"days_in_month"`
	DaysEnrolled    int           `json:"days_enrolled"`
	JoinedAt        string        `json:"joined_at"`
	PerMealRate     float64       `json:"per_meal_rate"`
	MealsPresent    int           `json:"meals_present"`
	MealsAbsent     int           `json:"meals_absent"`
	AbsentDates     []AbsentEntry `json:"absent_dates"`
	AttendanceDays  int           `json:"attendance_days"`
	HolidaysInMonth int           `json:"holidays_in_month"`
	FreeHolidays    int           `json:"free_holidays"`
	ExcessHolidays  int           `json:"excess_holidays"`
}

// Bill is one monthly invoice for a student. Created PENDING by the
// generator; flips to PAID exactly once when a payment reference is stamped.
// Regeneration deletes PENDING bills for the month but never touches PAID.
type Bill struct {
	ID               string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID        string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Month            string        `json:"month" gorm:"not null" validate:"required"`
	Year             int           `json:"year" gorm:"not null" validate:"required"`
	BaseAmount       float64       `json:"baseAmount" gorm:"not null;type:numeric"`
	RebateAmount     float64       `json:"rebateAmount" gorm:"type:numeric;default:0"`
	FinalAmount      float64       `json:"finalAmount" gorm:"not null;type:numeric"`
	Status           BillStatus    `json:"status" gorm:"not null;default:'PENDING';type:varchar(10)"`
	Breakdown        BillBreakdown `json:"breakdown" gorm:"type:jsonb"`
	GeneratedAt      time.Time     `json:"generatedAt" gorm:"autoCreateTime"`
	PaymentReference *string       `json:"paymentReference,omitempty"`
	PaidAt           *time.Time    `json:"paidAt,omitempty"`
}

// BillWithStudent is a bill joined with its student's display fields,
// sorted by student name in listings.
type BillWithStudent struct {
	Bill
	StudentName   string   `json:"student_name"`
	StudentMobile string   `json:"mobile"`
	MealSlot      MealSlot `json:"meal_slot"`
}

// BillRunSummary reports what a generation run did.
type BillRunSummary struct {
	NewBills        int `json:"newBills"`
	SkippedPaid     int `json:"skippedPaid"`
	HolidaysInMonth int `json:"holidaysInMonth"`
}
