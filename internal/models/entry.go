package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryCategory mirrors domain.EntryCategory at the persistence layer.
type EntryCategory string

const (
	Income  EntryCategory = "income"
	Expense EntryCategory = "expense"
)

// Entry is the database representation of a ledger entry.
type Entry struct {
	EntryID  string          `db:"entry_id"`
	UserID   string          `db:"user_id"`
	Currency string          `db:"currency"`
	Amount   decimal.Decimal `db:"amount"`
	Category EntryCategory   `db:"category"`
	TypeID   string          `db:"type_id"`
	Date     time.Time       `db:"date"`
	Note     string          `db:"note"`
	Locked   bool            `db:"locked"`
	AuditFields
}
