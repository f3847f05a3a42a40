package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDateStr(t *testing.T) {
	assert.True(t, IsValidDateStr("2025-09-01"))
	assert.True(t, IsValidDateStr("2020-01-01"))

	assert.False(t, IsValidDateStr("2025-9-1"))
	assert.False(t, IsValidDateStr("01-09-2025"))
	assert.False(t, IsValidDateStr("2025/09/01"))
	assert.False(t, IsValidDateStr("2025-09-01T00:00:00Z"))
	assert.False(t, IsValidDateStr(""))
}

func TestDateStrOrderMatchesCalendarOrder(t *testing.T) {
	// Lexicographic comparison is the whole point of the format
	assert.True(t, DateStr(2025, 9, 2) > DateStr(2025, 9, 1))
	assert.True(t, DateStr(2025, 10, 1) > DateStr(2025, 9, 30))
	assert.True(t, DateStr(2026, 1, 1) > DateStr(2025, 12, 31))
}

func TestMonthPrefix(t *testing.T) {
	assert.Equal(t, "2025-09", MonthPrefix(2025, 9))
	assert.Equal(t, "2025-12", MonthPrefix(2025, 12))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // leap year
	assert.Equal(t, 30, DaysInMonth(2025, 9))
	assert.Equal(t, 31, DaysInMonth(2025, 12))
}

func TestMonthNames(t *testing.T) {
	assert.Equal(t, "September", MonthName(9))
	assert.Equal(t, 9, MonthNumbers["September"])

	for name, num := range MonthNumbers {
		assert.Equal(t, name, MonthName(num))
	}
}
