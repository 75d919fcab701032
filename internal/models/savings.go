package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Savings is the database representation of one savings ledger row.
// Date is stored as DATE (no time component).
type Savings struct {
	SavingsID  string          `db:"savings_id"`
	UserID     string          `db:"user_id"`
	Currency   string          `db:"currency"`
	Amount     decimal.Decimal `db:"amount"`
	Date       time.Time       `db:"date"`
	Note       string          `db:"note"`
	TransferID *string         `db:"transfer_id"`
	Locked     bool            `db:"locked"`
	AuditFields
}
