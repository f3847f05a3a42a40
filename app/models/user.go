package models

import "time"

// User represents any account in the system: the mess owner, managers, and
// students. Student billing configuration lives directly on the user record.
type User struct {
	ID           string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string        `json:"name" gorm:"not null" validate:"required"`
	Email        *string       `json:"email,omitempty"`
	Mobile       string        `json:"mobile" gorm:"not null;index" validate:"required,len=10,numeric"`
	PasswordHash string        `json:"-" gorm:"not null"`
	Role         Role          `json:"role" gorm:"not null;type:varchar(10)" validate:"required,oneof=OWNER STUDENT MANAGER"`
	Status       AccountStatus `json:"status" gorm:"not null;default:'ACTIVE';type:varchar(10)"`

	// Financial configuration
	MonthlyFee  float64 `json:"monthlyFee" gorm:"type:numeric;default:0"`
	PaymentMode string  `json:"paymentMode" gorm:"default:'PREPAID'"`
	DailyRate   float64 `json:"dailyRate" gorm:"type:numeric;default:0"`

	// Mess specific. JoinedAt is a YYYY-MM-DD string compared lexicographically.
	MessType       string   `json:"messType" gorm:"default:'STANDARD'"`
	JoinedAt       string   `json:"joinedAt" gorm:"type:varchar(10)"`
	MealsPerDay    int      `json:"mealsPerDay" gorm:"default:2"`
	MealSlot       MealSlot `json:"mealSlot" gorm:"default:'BOTH';type:varchar(10)" validate:"oneof=AFTERNOON NIGHT BOTH"`
	AdvanceBalance float64  `json:"advanceBalance" gorm:"type:numeric;default:0"`

	IsDeleted bool      `json:"isDeleted" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// IsOwner reports whether the user holds the owner role.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
