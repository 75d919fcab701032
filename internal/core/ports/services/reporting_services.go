package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// ReportingSvcFacade defines read-only aggregation views over the ledger
type ReportingSvcFacade interface {
	// MonthlyReport aggregates one currency's activity for a month.
	MonthlyReport(ctx context.Context, userID string, currency string, month domain.Month) (*dto.MonthlyReportResponse, error)

	// DashboardStats summarizes the current month across all currencies
	// the user has entries in.
	DashboardStats(ctx context.Context, userID string) (*dto.DashboardStatsResponse, error)
}
