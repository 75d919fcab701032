package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// MonthCloseReaderSvc defines read operations around the close lifecycle
type MonthCloseReaderSvc interface {
	// NeedsClosing reports whether the given month has any currency with
	// activity that has not been closed yet.
	NeedsClosing(ctx context.Context, userID string, month domain.Month) (bool, error)

	// ClosedCurrencies lists the currencies already closed for a month.
	ClosedCurrencies(ctx context.Context, userID string, month domain.Month) ([]string, error)

	// ListAudits returns the reconciliation audit trail for a month.
	ListAudits(ctx context.Context, userID string, month domain.Month) ([]domain.MonthCloseAudit, error)
}

// MonthCloseWriterSvc defines the close operation itself
type MonthCloseWriterSvc interface {
	// CloseMonth reconciles and locks a month for every currency in the
	// request. The whole batch commits or rolls back as one transaction.
	CloseMonth(ctx context.Context, userID string, req dto.CloseMonthRequest) error
}

// MonthCloseSvcFacade combines the close lifecycle interfaces
type MonthCloseSvcFacade interface {
	MonthCloseReaderSvc
	MonthCloseWriterSvc
}
