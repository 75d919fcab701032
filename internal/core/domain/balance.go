package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceSnapshot holds the opening and current money-on-hand balance for one
// (user, currency, month). Unique per that triple.
//
// InitialAmount is the opening balance brought forward from the prior month's
// close; Amount is the current/closing balance. The first snapshot ever
// created for a currency has InitialAmount == Amount.
type BalanceSnapshot struct {
	BalanceID     string          `json:"balanceID"` // Primary Key (e.g., UUID)
	UserID        string          `json:"userID"`
	Currency      string          `json:"currency"`
	Month         Month           `json:"month"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	Amount        decimal.Decimal `json:"amount"`
	AuditFields
}
