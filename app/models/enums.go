package models

// Role defines the account roles.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleStudent Role = "STUDENT"
	RoleManager Role = "MANAGER"
)

// AccountStatus defines the possible status values for a user account.
type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

// MealSlot defines which daily meal shifts a student is subscribed to.
type MealSlot string

const (
	SlotAfternoon MealSlot = "AFTERNOON"
	SlotNight     MealSlot = "NIGHT"
	SlotBoth      MealSlot = "BOTH"
)

// MealStatus is the per-shift attendance value. A record can also hold NULL
// for a shift, meaning "not applicable" rather than absent.
type MealStatus string

const (
	MealPresent MealStatus = "PRESENT"
	MealAbsent  MealStatus = "ABSENT"
)

// BillStatus defines the bill lifecycle states.
type BillStatus string

const (
	BillPending BillStatus = "PENDING"
	BillPaid    BillStatus = "PAID"
)

// BillMethod identifies which computation produced a bill amount.
type BillMethod string

const (
	MethodAttendance BillMethod = "attendance"
	MethodProrated   BillMethod = "prorated"
)

// ExpenseCategory defines the operational expense categories.
type ExpenseCategory string

const (
	ExpenseGrocery     ExpenseCategory = "GROCERY"
	ExpenseGas         ExpenseCategory = "GAS"
	ExpenseElectricity ExpenseCategory = "ELECTRICITY"
	ExpenseMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseOther       ExpenseCategory = "OTHER"
)

// IncomeCategory defines the side income categories.
type IncomeCategory string

const (
	IncomeSnacks   IncomeCategory = "SNACKS"
	IncomePaniPuri IncomeCategory = "PANI_PURI"
	IncomeCustom   IncomeCategory = "CUSTOM"
)

// MealRates maps a meal slot to its default monthly fee.
var MealRates = map[MealSlot]float64{
	SlotBoth:      2700,
	SlotNight:     1400,
	SlotAfternoon: 1400,
}

// FreeHolidays maps a meal slot to the number of holiday meals absorbed by
// the base fee before any rebate applies. BOTH=2, NIGHT=2, AFTERNOON=0.
var FreeHolidays = map[MealSlot]int{
	SlotBoth:      2,
	SlotNight:     2,
	SlotAfternoon: 0,
}

// IsValidMealSlot reports whether s is a recognized meal slot.
func IsValidMealSlot(s string) bool {
	switch MealSlot(s) {
	case SlotAfternoon, SlotNight, SlotBoth:
		return true
	}
	return false
}

// IsValidExpenseCategory reports whether s is a recognized expense category.
func IsValidExpenseCategory(s string) bool {
	switch ExpenseCategory(s) {
	case ExpenseGrocery, ExpenseGas, ExpenseElectricity, ExpenseMaintenance, ExpenseOther:
		return true
	}
	return false
}

// IsValidIncomeCategory reports whether s is a recognized side income category.
func IsValidIncomeCategory(s string) bool {
	switch IncomeCategory(s) {
	case IncomeSnacks, IncomePaniPuri, IncomeCustom:
		return true
	}
	return false
}

// MealsPerDay returns the number of daily meals covered by a slot.
func (s MealSlot) MealsPerDay() int {
	if s == SlotBoth {
		return 2
	}
	return 1
}
