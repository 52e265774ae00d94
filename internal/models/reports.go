package models

// Dashboard snapshot
type DashboardStats struct {
	TotalCustomers    int64   `json:"total_customers"`
	TotalServices     int64   `json:"total_services"`
	TotalRevenue      float64 `json:"total_revenue"`
	TodayServices     int64   `json:"today_services"`
	TodayRevenue      float64 `json:"today_revenue"`
	FreeServicesGiven int64   `json:"free_services_given"`
}

// Monthly report
type PeriodReport struct {
	Month         string  `json:"month"`
	TotalServices int64   `json:"total_services"`
	TotalRevenue  float64 `json:"total_revenue"`
	FreeServices  int64   `json:"free_services"`
}

// One month of the yearly breakdown
type MonthTotals struct {
	Month         string  `json:"month"`
	TotalServices int64   `json:"total_services"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Yearly report with per-month breakdown
type YearReport struct {
	Year             string        `json:"year"`
	TotalServices    int64         `json:"total_services"`
	TotalRevenue     float64       `json:"total_revenue"`
	FreeServices     int64         `json:"free_services"`
	MonthlyBreakdown []MonthTotals `json:"monthly_breakdown"`
}
