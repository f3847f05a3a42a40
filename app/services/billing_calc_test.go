package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

func ptr(s models.MealStatus) *models.MealStatus { return &s }

func record(date string, afternoon, night *models.MealStatus) *models.Attendance {
	return &models.Attendance{DateStr: date, AfternoonStatus: afternoon, NightStatus: night}
}

func bothStudent() *models.User {
	return &models.User{
		ID:          "s1",
		Name:        "Ravi",
		MonthlyFee:  2700,
		MealSlot:    models.SlotBoth,
		MealsPerDay: 2,
		JoinedAt:    "2024-01-01",
	}
}

func TestRoundToEven(t *testing.T) {
	assert.Equal(t, 46.0, RoundToEven(45))
	assert.Equal(t, 44.0, RoundToEven(44))
	assert.Equal(t, 44.0, RoundToEven(43))
	assert.Equal(t, 932.0, RoundToEven(931.03))
	assert.Equal(t, 0.0, RoundToEven(0))
	assert.Equal(t, 2.0, RoundToEven(1))
}

func TestAttendanceBasedBill(t *testing.T) {
	// September 2025: 30 days, BOTH slot -> divisor 30*2-2 = 58
	student := bothStudent()
	attendance := []*models.Attendance{}
	for day := 1; day <= 10; day++ {
		attendance = append(attendance, record(
			dateFor(day), ptr(models.MealPresent), ptr(models.MealPresent)))
	}

	bill := ComputeStudentBill(BillInput{
		Student:    student,
		Attendance: attendance,
		Year:       2025,
		MonthNum:   9,
	})
	require.NotNil(t, bill)

	// 20 meals at 2700/58 = 931.03, rounded to the nearest even 932
	assert.Equal(t, 932.0, bill.FinalAmount)
	assert.Equal(t, models.MethodAttendance, bill.Breakdown.BillMethod)
	assert.Equal(t, 20, bill.Breakdown.MealsPresent)
	assert.Equal(t, 0, bill.Breakdown.MealsAbsent)
	assert.Equal(t, 46.55, bill.Breakdown.PerMealRate)
	assert.Equal(t, 30, bill.Breakdown.DaysInMonth)
	assert.Equal(t, 30, bill.Breakdown.DaysEnrolled)
	assert.Equal(t, 10, bill.Breakdown.AttendanceDays)
	assert.Equal(t, models.BillPending, bill.Status)
}

func TestAbsentShiftLabels(t *testing.T) {
	student := bothStudent()
	attendance := []*models.Attendance{
		record("2025-09-03", ptr(models.MealAbsent), ptr(models.MealAbsent)),
		record("2025-09-01", ptr(models.MealAbsent), ptr(models.MealPresent)),
		record("2025-09-02", ptr(models.MealPresent), ptr(models.MealAbsent)),
		record("2025-09-04", ptr(models.MealPresent), ptr(models.MealPresent)),
	}

	bill := ComputeStudentBill(BillInput{
		Student:    student,
		Attendance: attendance,
		Year:       2025,
		MonthNum:   9,
	})
	require.NotNil(t, bill)

	assert.Equal(t, 4, bill.Breakdown.MealsPresent)
	assert.Equal(t, 4, bill.Breakdown.MealsAbsent)

	require.Len(t, bill.Breakdown.AbsentDates, 3)
	assert.Equal(t, models.AbsentEntry{Date: "2025-09-01", Shift: "Afternoon"}, bill.Breakdown.AbsentDates[0])
	assert.Equal(t, models.AbsentEntry{Date: "2025-09-02", Shift: "Night"}, bill.Breakdown.AbsentDates[1])
	assert.Equal(t, models.AbsentEntry{Date: "2025-09-03", Shift: "Both"}, bill.Breakdown.AbsentDates[2])
}

func TestHolidayMealsAreSkipped(t *testing.T) {
	student := bothStudent()
	attendance := []*models.Attendance{
		record("2025-09-01", ptr(models.MealPresent), ptr(models.MealPresent)),
		record("2025-09-02", ptr(models.MealPresent), ptr(models.MealPresent)),
	}

	bill := ComputeStudentBill(BillInput{
		Student:      student,
		Attendance:   attendance,
		HolidayDates: map[string]bool{"2025-09-02": true},
		HolidayCount: 1,
		Year:         2025,
		MonthNum:     9,
	})
	require.NotNil(t, bill)

	// Only the non-holiday day's two meals count
	assert.Equal(t, 2, bill.Breakdown.MealsPresent)
	assert.Equal(t, 1, bill.Breakdown.HolidaysInMonth)
}

func TestSlotFiltersIrrelevantShift(t *testing.T) {
	student := bothStudent()
	student.MealSlot = models.SlotNight
	student.MealsPerDay = 1
	student.MonthlyFee = 1400

	attendance := []*models.Attendance{
		// Afternoon status should not count for a NIGHT subscriber
		record("2025-09-01", ptr(models.MealPresent), ptr(models.MealPresent)),
		record("2025-09-02", ptr(models.MealAbsent), nil),
	}

	bill := ComputeStudentBill(BillInput{
		Student:    student,
		Attendance: attendance,
		Year:       2025,
		MonthNum:   9,
	})
	require.NotNil(t, bill)

	assert.Equal(t, 1, bill.Breakdown.MealsPresent)
	assert.Equal(t, 0, bill.Breakdown.MealsAbsent)
	assert.Empty(t, bill.Breakdown.AbsentDates)
}

func TestMidMonthJoin(t *testing.T) {
	student := bothStudent()
	student.JoinedAt = "2025-09-15"

	attendance := []*models.Attendance{
		// Before enrollment; must be ignored
		record("2025-09-10", ptr(models.MealPresent), ptr(models.MealPresent)),
		record("2025-09-16", ptr(models.MealPresent), ptr(models.MealPresent)),
	}

	bill := ComputeStudentBill(BillInput{
		Student:    student,
		Attendance: attendance,
		Year:       2025,
		MonthNum:   9,
	})
	require.NotNil(t, bill)

	assert.Equal(t, 16, bill.Breakdown.DaysEnrolled)
	assert.Equal(t, 2, bill.Breakdown.MealsPresent)
	assert.Equal(t, 1, bill.Breakdown.AttendanceDays)
}

func TestJoinedAfterMonthGetsNoBill(t *testing.T) {
	student := bothStudent()
	student.JoinedAt = "2025-10-01"

	bill := ComputeStudentBill(BillInput{
		Student:  student,
		Year:     2025,
		MonthNum: 9,
	})
	assert.Nil(t, bill)
}

func TestProRatedBill(t *testing.T) {
	student := bothStudent()

	// 3 holidays, 2 free -> 1 excess. Deduction = 1*2 meals at 2700/58.
	bill := ComputeStudentBill(BillInput{
		Student:      student,
		HolidayCount: 3,
		Year:         2025,
		MonthNum:     9,
	})
	require.NotNil(t, bill)

	// 2700 - 93.10 = 2606.90, rounded to the nearest even 2606
	assert.Equal(t, 2606.0, bill.FinalAmount)
	assert.Equal(t, models.MethodProrated, bill.Breakdown.BillMethod)
	assert.Equal(t, 1, bill.Breakdown.ExcessHolidays)
	assert.Equal(t, 0, bill.Breakdown.AttendanceDays)
}

func TestProRatedMidMonthJoin(t *testing.T) {
	student := bothStudent()
	student.JoinedAt = "2025-09-15"

	bill := ComputeStudentBill(BillInput{
		Student:      student,
		HolidayCount: 2,
		Year:         2025,
		MonthNum:     9,
	})
	require.NotNil(t, bill)

	// 2700 * 16/30 = 1440, no excess holidays
	assert.Equal(t, 1440.0, bill.FinalAmount)
	assert.Equal(t, 0, bill.Breakdown.ExcessHolidays)
}

func TestProRatedBillNeverNegative(t *testing.T) {
	student := bothStudent()
	student.MealSlot = models.SlotNight
	student.MealsPerDay = 1
	student.MonthlyFee = 100

	bill := ComputeStudentBill(BillInput{
		Student:      student,
		HolidayCount: 32,
		Year:         2025,
		MonthNum:     9,
	})
	require.NotNil(t, bill)
	assert.Equal(t, 0.0, bill.FinalAmount)
}

func TestDefaultsForLegacyStudents(t *testing.T) {
	student := &models.User{ID: "s2", Name: "Mohan"}

	bill := ComputeStudentBill(BillInput{
		Student:  student,
		Year:     2025,
		MonthNum: 9,
	})
	require.NotNil(t, bill)

	assert.Equal(t, models.SlotBoth, bill.Breakdown.MealSlot)
	assert.Equal(t, 2700.0, bill.Breakdown.MonthlyFee)
	assert.Equal(t, 2, bill.Breakdown.MealsPerDay)
	assert.Equal(t, "2020-01-01", bill.Breakdown.JoinedAt)
	assert.Equal(t, 30, bill.Breakdown.DaysEnrolled)
}

func TestShortJoinDateDoesNotPanic(t *testing.T) {
	// A hand-edited row can hold a one-digit day; it still sorts inside the
	// month window and must bill as day 1, not crash the whole run
	student := bothStudent()
	student.JoinedAt = "2025-09-1"

	bill := ComputeStudentBill(BillInput{
		Student:  student,
		Year:     2025,
		MonthNum: 9,
	})
	require.NotNil(t, bill)
	assert.Equal(t, 30, bill.Breakdown.DaysEnrolled)
}

func TestDayOfDateStr(t *testing.T) {
	assert.Equal(t, 15, dayOfDateStr("2025-09-15"))
	assert.Equal(t, 1, dayOfDateStr("2025-09-01"))
	assert.Equal(t, 1, dayOfDateStr("2025-09-1"))
	assert.Equal(t, 9, dayOfDateStr("2025-09-9"))
	assert.Equal(t, 1, dayOfDateStr("2025-09-"))
	assert.Equal(t, 1, dayOfDateStr(""))
}

func TestMissingAttendanceDates(t *testing.T) {
	marked := map[string]bool{"2025-09-01": true, "2025-09-03": true}
	holidays := map[string]bool{"2025-09-02": true}

	missing := MissingAttendanceDates(marked, holidays, 2025, 9, "2025-09-05")
	assert.Equal(t, []string{"2025-09-04", "2025-09-05"}, missing)
}

func TestMissingAttendanceDatesStopsAtToday(t *testing.T) {
	missing := MissingAttendanceDates(map[string]bool{}, map[string]bool{}, 2025, 9, "2025-09-02")
	assert.Equal(t, []string{"2025-09-01", "2025-09-02"}, missing)

	// Whole month in the past: every non-holiday day is reported
	missing = MissingAttendanceDates(map[string]bool{}, map[string]bool{}, 2025, 9, "2025-10-15")
	assert.Len(t, missing, 30)

	// Future month: nothing to report yet
	missing = MissingAttendanceDates(map[string]bool{}, map[string]bool{}, 2025, 9, "2025-08-20")
	assert.Empty(t, missing)
}

func dateFor(day int) string {
	return dates.DateStr(2025, 9, day)
}
