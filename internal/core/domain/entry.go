package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryCategory indicates whether a ledger entry is income or an expense.
type EntryCategory string

const (
	Income  EntryCategory = "income"
	Expense EntryCategory = "expense"
)

// Entry represents a single income or expense transaction in the ledger.
// Once a month close locks it, the row is immutable and excluded from
// unlocked-only aggregations.
type Entry struct {
	EntryID  string          `json:"entryID"` // Primary Key (e.g., UUID)
	UserID   string          `json:"userID"`
	Currency string          `json:"currency"` // ISO-like code, e.g. "USD"
	Amount   decimal.Decimal `json:"amount"`   // Positive; sign is implied by Category
	Category EntryCategory   `json:"category"`
	TypeID   string          `json:"typeID"` // FK -> EntryType
	Date     time.Time       `json:"date"`
	Note     string          `json:"note"` // Nullable
	Locked   bool            `json:"locked"`
	AuditFields
}
