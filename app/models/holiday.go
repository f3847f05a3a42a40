package models

import "time"

// Holiday declares a date on which no meal-absence penalty applies and
// attendance need not be marked. DateStr is unique.
type Holiday struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	DateStr   string    `json:"date" gorm:"uniqueIndex;not null;type:varchar(10)" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
