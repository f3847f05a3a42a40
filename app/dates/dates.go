// Package dates centralizes all calendar-date handling. Dates travel through
// the system as plain YYYY-MM-DD strings and are compared lexicographically;
// the fixed-width zero-padded format makes string order equal calendar order,
// which sidesteps every timezone conversion bug the app used to have. Nothing
// outside this package should parse a date string into a time.Time just to
// compare it.
package dates

import (
	"fmt"
	"regexp"
	"time"
)

// MonthNumbers maps English month names to calendar month numbers.
var MonthNumbers = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

var dateStrPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateStr reports whether s is a canonical YYYY-MM-DD string.
func IsValidDateStr(s string) bool {
	return dateStrPattern.MatchString(s)
}

// Now returns the current time in the configured local civil calendar.
// main() pins time.Local to IST at startup.
func Now() time.Time {
	return time.Now()
}

// TodayStr returns today's date as a YYYY-MM-DD string.
func TodayStr() string {
	return Now().Format("2006-01-02")
}

// MonthPrefix returns the YYYY-MM prefix for a year/month pair.
func MonthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// DateStr builds a canonical date string from components.
func DateStr(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName returns the English name for a month number.
func MonthName(month int) string {
	return time.Month(month).String()
}
