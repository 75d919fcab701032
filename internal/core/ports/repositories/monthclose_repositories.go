package repositories

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
)

// MonthCloseReader defines read operations for close markers and audits
type MonthCloseReader interface {
	// FindClosedMonth retrieves the marker for (user, currency, month), or
	// ErrNotFound when the month is still open for that currency.
	FindClosedMonth(ctx context.Context, userID, currency string, month domain.Month) (*domain.ClosedMonth, error)

	// HasClosedMonth reports whether any currency was closed for the month.
	HasClosedMonth(ctx context.Context, userID string, month domain.Month) (bool, error)

	// ListClosedCurrencies returns the currencies already closed for the month.
	ListClosedCurrencies(ctx context.Context, userID string, month domain.Month) ([]string, error)

	// ListAudits retrieves the audit trail for (user, month), oldest first.
	ListAudits(ctx context.Context, userID string, month domain.Month) ([]domain.MonthCloseAudit, error)
}

// MonthCloseWriter defines write operations for close markers and audits
type MonthCloseWriter interface {
	// UpsertClosedMonth creates or refreshes the close marker.
	UpsertClosedMonth(ctx context.Context, closed domain.ClosedMonth) error

	// SaveMonthCloseAudit appends one audit row. Audits are never updated
	// or deleted.
	SaveMonthCloseAudit(ctx context.Context, audit domain.MonthCloseAudit) error

	// AcquireCloseLock serializes closes for (user, currency, month) within
	// the current transaction; it blocks until any concurrent close of the
	// same key finishes.
	AcquireCloseLock(ctx context.Context, userID, currency string, month domain.Month) error
}

// MonthCloseRepositoryFacade combines the close marker/audit interfaces.
type MonthCloseRepositoryFacade interface {
	MonthCloseReader
	MonthCloseWriter
}
