package models

import (
	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the database representation of the per-month balance
// row. Unique on (user_id, currency, month).
type BalanceSnapshot struct {
	BalanceID     string          `db:"balance_id"`
	UserID        string          `db:"user_id"`
	Currency      string          `db:"currency"`
	Month         string          `db:"month"`
	InitialAmount decimal.Decimal `db:"initial_amount"`
	Amount        decimal.Decimal `db:"amount"`
	AuditFields
}
