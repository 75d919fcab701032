package repositories

import (
	"context"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader defines read operations for balance snapshots
type BalanceReader interface {
	// FindBalanceByMonth retrieves the snapshot for (user, currency, month),
	// or ErrNotFound.
	FindBalanceByMonth(ctx context.Context, userID, currency string, month domain.Month) (*domain.BalanceSnapshot, error)

	// FindAnyBalanceForCurrency returns any snapshot for the user/currency
	// regardless of month, or ErrNotFound if the currency has never been
	// declared.
	FindAnyBalanceForCurrency(ctx context.Context, userID, currency string) (*domain.BalanceSnapshot, error)

	// ListBalancesByMonth retrieves all of a user's snapshots for one month.
	ListBalancesByMonth(ctx context.Context, userID string, month domain.Month) ([]domain.BalanceSnapshot, error)

	// SumBalancesByCurrency returns per-currency totals of snapshot amounts.
	SumBalancesByCurrency(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
}

// BalanceWriter defines write operations for balance snapshots
type BalanceWriter interface {
	// SaveBalanceSnapshot persists a new snapshot.
	SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error

	// UpsertClosingBalance sets the month's closing amount, creating the
	// snapshot if it does not exist. InitialAmount is left untouched on
	// update and zero on insert.
	UpsertClosingBalance(ctx context.Context, userID, currency string, month domain.Month, amount decimal.Decimal, updatedBy string, now time.Time) error

	// UpsertOpeningBalance seeds a month's snapshot with both the opening
	// and current amount, overwriting both if the snapshot exists.
	UpsertOpeningBalance(ctx context.Context, userID, currency string, month domain.Month, amount decimal.Decimal, updatedBy string, now time.Time) error
}

// BalanceRepositoryFacade combines all balance snapshot repository interfaces.
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
