package dto

import "github.com/shopspring/decimal"

// MonthlyReportParams defines query parameters for the monthly report.
type MonthlyReportParams struct {
	Month    string `form:"month" binding:"required"`
	Currency string `form:"currency" binding:"required,len=3"`
}

// MonthlyReportResponse aggregates a month's activity for one currency.
type MonthlyReportResponse struct {
	Entries                  []EntryResponse `json:"entries"`
	InitialBalance           decimal.Decimal `json:"initialBalance"`
	BroughtForward           decimal.Decimal `json:"broughtForward"`
	TotalIncome              decimal.Decimal `json:"totalIncome"`
	TotalExpenses            decimal.Decimal `json:"totalExpenses"`
	IncomingTransfers        decimal.Decimal `json:"incomingTransfers"`
	OutgoingTransfers        decimal.Decimal `json:"outgoingTransfers"`
	Net                      decimal.Decimal `json:"net"`
	SavingsThisMonth         decimal.Decimal `json:"savingsThisMonth"`
	TotalSavingsThisMonth    decimal.Decimal `json:"totalSavingsThisMonth"`
	IncomingSavingsTransfers decimal.Decimal `json:"incomingSavingsTransfers"`
	OutgoingSavingsTransfers decimal.Decimal `json:"outgoingSavingsTransfers"`
}

// DashboardStatsResponse summarizes current-month activity across all
// currencies the user has entries in.
type DashboardStatsResponse struct {
	Income   map[string]decimal.Decimal `json:"income"`
	Expenses map[string]decimal.Decimal `json:"expenses"`
	Balances map[string]decimal.Decimal `json:"balances"`
	Savings  map[string]decimal.Decimal `json:"savings"`
	Totals   DashboardTotals            `json:"totals"`
	Counts   DashboardCounts            `json:"counts"`
}

// DashboardTotals holds overall record counts.
type DashboardTotals struct {
	Entries int64 `json:"entries"`
}

// DashboardCounts holds per-category entry counts.
type DashboardCounts struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
}
