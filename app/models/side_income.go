package models

import "time"

// SideIncome is revenue earned outside subscriptions (snack counter, pani
// puri stall, custom one-offs). Description is mandatory for CUSTOM entries.
type SideIncome struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Category    IncomeCategory `json:"category" gorm:"not null;type:varchar(10)" validate:"required,oneof=SNACKS PANI_PURI CUSTOM"`
	Amount      float64        `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Description string         `json:"description" gorm:"default:''"`
	DateStr     string         `json:"date" gorm:"not null;index;type:varchar(10)"`
	CreatedBy   *string        `json:"createdBy,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	Editable    bool           `json:"editable" gorm:"-"`
}

// IncomeCategoryTotal aggregates one category for a month.
type IncomeCategoryTotal struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// IncomeTotals is the monthly side income stats payload.
type IncomeTotals struct {
	Snacks     IncomeCategoryTotal `json:"SNACKS"`
	PaniPuri   IncomeCategoryTotal `json:"PANI_PURI"`
	Custom     IncomeCategoryTotal `json:"CUSTOM"`
	GrandTotal float64             `json:"grandTotal"`
}
