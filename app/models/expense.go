package models

import "time"

// Expense is a variable operational cost (grocery, gas, electricity...).
// DateStr is a YYYY-MM-DD string; month filters use the YYYY-MM prefix.
type Expense struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Description string          `json:"description" gorm:"not null" validate:"required"`
	Amount      float64         `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Category    ExpenseCategory `json:"category" gorm:"not null;default:'OTHER';type:varchar(15)" validate:"oneof=GROCERY GAS ELECTRICITY MAINTENANCE OTHER"`
	DateStr     string          `json:"date" gorm:"not null;index;type:varchar(10)"`
	CreatedBy   *string         `json:"createdBy,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
