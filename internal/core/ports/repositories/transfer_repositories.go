package repositories

import (
	"context"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferSumFilter narrows a transfer aggregation to one direction between
// the Balance and Savings accounts within a date window.
type TransferSumFilter struct {
	UserID       string
	Currency     string
	FromAccount  domain.AccountName
	ToAccount    domain.AccountName
	From         time.Time
	To           time.Time
	UnlockedOnly bool
}

// TransferReader defines read operations for transfers
type TransferReader interface {
	// FindTransferByID retrieves a single transfer by its identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfers retrieves a user's transfers, newest first.
	ListTransfers(ctx context.Context, userID string, limit, offset int) ([]domain.Transfer, error)

	// SumTransfers returns the total amount of transfers matching the filter.
	SumTransfers(ctx context.Context, filter TransferSumFilter) (decimal.Decimal, error)

	// CountTransfersInWindow counts a user's transfers dated within the
	// window, across all currencies.
	CountTransfersInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error)
}

// TransferWriter defines write operations for transfers
type TransferWriter interface {
	// SaveTransferWithMirror persists a transfer and its mirrored savings
	// row atomically.
	SaveTransferWithMirror(ctx context.Context, transfer domain.Transfer, mirror domain.Savings) error

	// DeleteTransferWithMirror removes an unlocked transfer and its mirrored
	// savings row atomically.
	DeleteTransferWithMirror(ctx context.Context, userID, transferID string) error

	// LockTransfersInWindow marks every transfer for the user/currency dated
	// in [from, to] as locked, regardless of its current lock state.
	LockTransfersInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error)
}

// TransferRepositoryFacade combines all transfer repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
