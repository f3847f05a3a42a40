package models

import "time"

// Staff is a mess employee drawing a fixed monthly salary.
type Staff struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string        `json:"name" gorm:"not null" validate:"required"`
	Role      string        `json:"role" gorm:"not null" validate:"required"`
	Salary    float64       `json:"salary" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Status    AccountStatus `json:"status" gorm:"not null;default:'ACTIVE';type:varchar(10)"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// StaffPayment is one salary disbursement. At most one payment per staff
// member per civil month. PaymentDateStr is a YYYY-MM-DD string.
type StaffPayment struct {
	ID             string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StaffID        string  `json:"staffId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount         float64 `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	PaymentDateStr string  `json:"paymentDate" gorm:"not null;type:varchar(10)"`
}

// StaffPaymentWithName joins a payment with the staff member's name.
type StaffPaymentWithName struct {
	StaffPayment
	StaffName string `json:"staff_name"`
}
