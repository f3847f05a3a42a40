package models

// DashboardStats is the headline numbers block for the owner dashboard.
type DashboardStats struct {
	Students           int     `json:"students"`
	Staff              int     `json:"staff"`
	Revenue            float64 `json:"revenue"`
	BillRevenue        float64 `json:"billRevenue"`
	SideIncome         float64 `json:"sideIncome"`
	Pending            float64 `json:"pending"`
	Expense            float64 `json:"expense"`
	FixedExpense       float64 `json:"fixedExpense"`
	OperationalExpense float64 `json:"operationalExpense"`
	NetIncome          float64 `json:"netIncome"`
}

// MonthlyBillStats is one month's revenue/pending roll-up for the trend list.
type MonthlyBillStats struct {
	Month      string  `json:"month"`
	Year       int     `json:"year"`
	Revenue    float64 `json:"revenue"`
	Pending    float64 `json:"pending"`
	TotalBills int     `json:"totalBills"`
}

// MonthExpenseBreakdown splits the current month's outgoings.
type MonthExpenseBreakdown struct {
	Fixed       float64 `json:"fixed"`
	Operational float64 `json:"operational"`
	Total       float64 `json:"total"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
}
