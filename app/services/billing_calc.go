package services

import (
	"math"
	"sort"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/dates"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// defaultJoinedAt backstops students created before join dates were recorded.
const defaultJoinedAt = "2020-01-01"

// RoundToEven rounds to the nearest even integer, halves up: round(x/2)*2.
// Bills are always even rupee amounts; this exact rule is relied on by
// regeneration idempotence, so keep it bit-for-bit.
func RoundToEven(x float64) float64 {
	return math.Round(x/2) * 2
}

// BillInput is everything the per-student computation needs. It is read-only
// and carries no database handle: each student's bill is computed
// independently of every other student's.
type BillInput struct {
	Student      *models.User
	Attendance   []*models.Attendance
	HolidayDates map[string]bool
	HolidayCount int
	Year         int
	MonthNum     int
}

// ComputeStudentBill derives one student's invoice amount and breakdown for
// the month. It returns nil when the student joined after the month ended
// and therefore gets no bill.
func ComputeStudentBill(in BillInput) *models.Bill {
	student := in.Student
	totalDays := dates.DaysInMonth(in.Year, in.MonthNum)
	monthStart := dates.DateStr(in.Year, in.MonthNum, 1)
	monthEnd := dates.DateStr(in.Year, in.MonthNum, totalDays)

	joinedAt := student.JoinedAt
	if joinedAt == "" {
		joinedAt = defaultJoinedAt
	}
	if len(joinedAt) > 10 {
		// Tolerate timestamps that slipped in; keep the date part only.
		joinedAt = joinedAt[:10]
	}

	// Not yet enrolled during the billing month.
	if joinedAt > monthEnd {
		return nil
	}

	mealSlot := student.MealSlot
	if mealSlot == "" {
		mealSlot = models.SlotBoth
	}
	mealsPerDay := student.MealsPerDay
	if mealsPerDay == 0 {
		mealsPerDay = mealSlot.MealsPerDay()
	}
	monthlyFee := student.MonthlyFee
	if monthlyFee == 0 {
		monthlyFee = models.MealRates[mealSlot]
	}
	freeHolidays := models.FreeHolidays[mealSlot]

	effectiveStart := monthStart
	effectiveStartDay := 1
	if joinedAt > monthStart && joinedAt <= monthEnd {
		effectiveStart = joinedAt
		effectiveStartDay = dayOfDateStr(joinedAt)
	}
	daysEnrolled := totalDays - effectiveStartDay + 1

	// Only records inside the enrolled window count.
	valid := make([]*models.Attendance, 0, len(in.Attendance))
	for _, r := range in.Attendance {
		if r.DateStr >= effectiveStart {
			valid = append(valid, r)
		}
	}

	mealsPresent := 0
	mealsAbsent := 0
	absentByDate := map[string]string{}

	for _, record := range valid {
		if in.HolidayDates[record.DateStr] {
			// Holiday meals neither charge nor penalize.
			continue
		}

		afternoonAbsent := false
		nightAbsent := false

		if mealSlot == models.SlotAfternoon || mealSlot == models.SlotBoth {
			switch status(record.AfternoonStatus) {
			case models.MealPresent:
				mealsPresent++
			case models.MealAbsent:
				mealsAbsent++
				afternoonAbsent = true
			}
		}
		if mealSlot == models.SlotNight || mealSlot == models.SlotBoth {
			switch status(record.NightStatus) {
			case models.MealPresent:
				mealsPresent++
			case models.MealAbsent:
				mealsAbsent++
				nightAbsent = true
			}
		}

		if afternoonAbsent || nightAbsent {
			shift := "Night"
			if afternoonAbsent && nightAbsent {
				shift = "Both"
			} else if afternoonAbsent {
				shift = "Afternoon"
			}
			absentByDate[record.DateStr] = shift
		}
	}

	absentDates := make([]models.AbsentEntry, 0, len(absentByDate))
	for date, shift := range absentByDate {
		absentDates = append(absentDates, models.AbsentEntry{Date: date, Shift: shift})
	}
	sort.Slice(absentDates, func(i, j int) bool { return absentDates[i].Date < absentDates[j].Date })

	// The monthly fee amortizes over total possible meals minus the slot's
	// flat free-holiday allowance. The reduced divisor makes the per-meal
	// rate deliberately higher than naive division; that surcharge is the
	// rebate mechanism.
	totalMeals := totalDays * mealsPerDay
	divisor := math.Max(1, float64(totalMeals-freeHolidays))
	perMealRate := monthlyFee / divisor

	excessHolidays := in.HolidayCount - freeHolidays
	if excessHolidays < 0 {
		excessHolidays = 0
	}

	var finalAmount float64
	var billMethod models.BillMethod

	if len(valid) > 0 {
		// Attendance-based: charge only for meals marked PRESENT.
		finalAmount = RoundToEven(float64(mealsPresent) * perMealRate)
		billMethod = models.MethodAttendance
	} else {
		// No attendance marked yet: pro-rate the monthly fee, then rebate
		// holidays beyond the free allowance.
		proRatedFee := monthlyFee * float64(daysEnrolled) / float64(totalDays)
		holidayDeduction := float64(excessHolidays*mealsPerDay) * perMealRate
		finalAmount = RoundToEven(math.Max(0, proRatedFee-holidayDeduction))
		billMethod = models.MethodProrated
	}

	return &models.Bill{
		StudentID:    student.ID,
		Month:        dates.MonthName(in.MonthNum),
		Year:         in.Year,
		BaseAmount:   monthlyFee,
		RebateAmount: 0,
		FinalAmount:  finalAmount,
		Status:       models.BillPending,
		Breakdown: models.BillBreakdown{
			BillMethod:      billMethod,
			MonthlyFee:      monthlyFee,
			MealSlot:        mealSlot,
			MealsPerDay:     mealsPerDay,
			DaysInMonth:     totalDays,
			DaysEnrolled:    daysEnrolled,
			JoinedAt:        joinedAt,
			PerMealRate:     math.Round(perMealRate*100) / 100,
			MealsPresent:    mealsPresent,
			MealsAbsent:     mealsAbsent,
			AbsentDates:     absentDates,
			AttendanceDays:  len(valid),
			HolidaysInMonth: in.HolidayCount,
			FreeHolidays:    freeHolidays,
			ExcessHolidays:  excessHolidays,
		},
	}
}

func status(s *models.MealStatus) models.MealStatus {
	if s == nil {
		return ""
	}
	return *s
}

// dayOfDateStr extracts the day-of-month from a YYYY-MM-DD string. Hand-edited
// rows sometimes carry a short day ("2025-09-1"); read whatever digits are
// there instead of assuming two.
func dayOfDateStr(s string) int {
	day := 0
	for i := 8; i < len(s) && i < 10; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		day = day*10 + int(c-'0')
	}
	if day < 1 {
		return 1
	}
	return day
}

// MissingAttendanceDates returns every date from day 1 through
// min(today, month end) that has zero attendance records and is not a
// holiday. Future dates are never reported.
func MissingAttendanceDates(marked, holidays map[string]bool, year, month int, todayStr string) []string {
	daysInMonth := dates.DaysInMonth(year, month)

	missing := []string{}
	for day := 1; day <= daysInMonth; day++ {
		dateStr := dates.DateStr(year, month, day)
		if dateStr > todayStr {
			break
		}
		if marked[dateStr] || holidays[dateStr] {
			continue
		}
		missing = append(missing, dateStr)
	}
	return missing
}
