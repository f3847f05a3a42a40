package models

// Attendance records whether a student consumed each meal shift on a given
// date. DateStr is a plain YYYY-MM-DD string; (StudentID, DateStr) is unique.
// Each shift is tri-state: PRESENT, ABSENT, or nil (not applicable).
type Attendance struct {
	ID              string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID       string      `json:"studentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	DateStr         string      `json:"date" gorm:"not null;index;type:varchar(10)" validate:"required"`
	AfternoonStatus *MealStatus `json:"afternoonStatus"`
	NightStatus     *MealStatus `json:"nightStatus"`
}

// AttendanceWithStudent is an attendance row joined with the student's
// display fields for the daily register view.
type AttendanceWithStudent struct {
	Attendance
	StudentName   string   `json:"student_name"`
	StudentMobile string   `json:"mobile"`
	MealSlot      MealSlot `json:"meal_slot"`
}
