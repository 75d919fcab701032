package repositories

import (
	"context"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavingsSumFilter narrows a savings aggregation to one user/currency and a
// date window. ExcludeNote drops rows carrying that exact note (used to keep
// the close's own auto snapshot out of calculated savings); ExcludeMirrors
// drops rows created as transfer mirrors.
type SavingsSumFilter struct {
	UserID         string
	Currency       string
	From           time.Time
	To             time.Time
	UnlockedOnly   bool
	ExcludeNote    string
	ExcludeMirrors bool
}

// SavingsReader defines read operations for the savings ledger
type SavingsReader interface {
	// FindSavingsByID retrieves a single savings row by its identifier.
	FindSavingsByID(ctx context.Context, savingsID string) (*domain.Savings, error)

	// FindAnySavingsForCurrency returns any savings row for the
	// user/currency, or ErrNotFound if none exists yet.
	FindAnySavingsForCurrency(ctx context.Context, userID, currency string) (*domain.Savings, error)

	// ListSavingsInWindow retrieves a user's savings rows dated within the window.
	ListSavingsInWindow(ctx context.Context, userID string, from, to time.Time) ([]domain.Savings, error)

	// SumSavingsInWindow returns the total of savings rows matching the filter.
	SumSavingsInWindow(ctx context.Context, filter SavingsSumFilter) (decimal.Decimal, error)

	// SumSavingsThrough returns the running total of ALL savings rows
	// (locked and unlocked) for the user/currency dated on or before the
	// given date.
	SumSavingsThrough(ctx context.Context, userID, currency string, through time.Time) (decimal.Decimal, error)

	// SumSavingsByCurrency returns per-currency running totals for the user.
	SumSavingsByCurrency(ctx context.Context, userID string) (map[string]decimal.Decimal, error)

	// CountSavingsInWindow counts a user's savings rows dated within the
	// window, across all currencies.
	CountSavingsInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error)
}

// SavingsWriter defines write operations for the savings ledger
type SavingsWriter interface {
	// SaveSavings persists a new savings row.
	SaveSavings(ctx context.Context, savings domain.Savings) error

	// DeleteSavings removes an unlocked savings row owned by the user.
	DeleteSavings(ctx context.Context, userID, savingsID string) error

	// LockSavingsInWindow marks every savings row for the user/currency
	// dated in [from, to] as locked, regardless of its current lock state.
	LockSavingsInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error)
}

// SavingsRepositoryFacade combines all savings repository interfaces.
type SavingsRepositoryFacade interface {
	SavingsReader
	SavingsWriter
}
