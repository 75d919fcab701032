package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosedMonth is the database marker for a finalized (user, currency, month).
type ClosedMonth struct {
	ClosedMonthID string    `db:"closed_month_id"`
	UserID        string    `db:"user_id"`
	Currency      string    `db:"currency"`
	Month         string    `db:"month"`
	ClosedAt      time.Time `db:"closed_at"`
}

// MonthCloseAudit is the append-only database row written once per currency
// per close operation.
type MonthCloseAudit struct {
	AuditID               string          `db:"audit_id"`
	UserID                string          `db:"user_id"`
	Currency              string          `db:"currency"`
	Month                 string          `db:"month"`
	CalculatedMoneyOnHand decimal.Decimal `db:"calculated_money_on_hand"`
	EnteredMoneyOnHand    decimal.Decimal `db:"entered_money_on_hand"`
	CalculatedSavings     decimal.Decimal `db:"calculated_savings"`
	EnteredSavings        decimal.Decimal `db:"entered_savings"`
	DifferenceMoneyOnHand decimal.Decimal `db:"difference_money_on_hand"`
	DifferenceSavings     decimal.Decimal `db:"difference_savings"`
	ClosedAt              time.Time       `db:"closed_at"`
	Note                  string          `db:"note"`
}
