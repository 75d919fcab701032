package repositories

import (
	"context"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntrySumFilter narrows an entry aggregation to one user/currency/category
// and a date window. UnlockedOnly excludes rows finalized by a month close.
type EntrySumFilter struct {
	UserID       string
	Currency     string
	Category     domain.EntryCategory
	From         time.Time
	To           time.Time
	UnlockedOnly bool
}

// EntryReader defines read operations for ledger entries
type EntryReader interface {
	// FindEntryByID retrieves a single entry by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves a user's entries of one category within a date
	// window, newest first.
	ListEntries(ctx context.Context, userID string, category domain.EntryCategory, from, to time.Time, limit, offset int) ([]domain.Entry, error)

	// SumEntries returns the total amount of entries matching the filter.
	SumEntries(ctx context.Context, filter EntrySumFilter) (decimal.Decimal, error)

	// SumEntriesByCurrency returns per-currency totals of one category in a window.
	SumEntriesByCurrency(ctx context.Context, userID string, category domain.EntryCategory, from, to time.Time) (map[string]decimal.Decimal, error)

	// CountEntriesInWindow counts a user's entries dated within the window,
	// across all currencies.
	CountEntriesInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error)

	// CountEntries counts a user's entries, optionally limited to a category.
	CountEntries(ctx context.Context, userID string, category *domain.EntryCategory) (int64, error)
}

// EntryWriter defines write operations for ledger entries
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes an unlocked entry owned by the user.
	DeleteEntry(ctx context.Context, userID, entryID string) error

	// LockEntriesInWindow marks every entry for the user/currency dated in
	// [from, to] as locked, regardless of its current lock state.
	LockEntriesInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error)
}

// EntryRepositoryFacade combines all entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
