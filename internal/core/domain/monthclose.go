package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosedMonth marks a (user, currency, month) as finalized. There is no
// reverse transition.
type ClosedMonth struct {
	ClosedMonthID string    `json:"closedMonthID"` // Primary Key (e.g., UUID)
	UserID        string    `json:"userID"`
	Currency      string    `json:"currency"`
	Month         Month     `json:"month"`
	ClosedAt      time.Time `json:"closedAt"`
}

// MonthCloseAudit is the append-only record of one close operation for one
// currency: the user-entered figures, the system-calculated figures, and
// their signed differences (entered minus calculated).
type MonthCloseAudit struct {
	AuditID               string          `json:"auditID"` // Primary Key (e.g., UUID)
	UserID                string          `json:"userID"`
	Currency              string          `json:"currency"`
	Month                 Month           `json:"month"`
	CalculatedMoneyOnHand decimal.Decimal `json:"calculatedMoneyOnHand"`
	EnteredMoneyOnHand    decimal.Decimal `json:"enteredMoneyOnHand"`
	CalculatedSavings     decimal.Decimal `json:"calculatedSavings"`
	EnteredSavings        decimal.Decimal `json:"enteredSavings"`
	DifferenceMoneyOnHand decimal.Decimal `json:"differenceMoneyOnHand"`
	DifferenceSavings     decimal.Decimal `json:"differenceSavings"`
	ClosedAt              time.Time       `json:"closedAt"`
	Note                  string          `json:"note"`
}

// Position is the computed money position for one currency in one month.
// MoneyOnHand is rounded to 2 decimal places; Savings is the raw running sum.
type Position struct {
	Currency          string          `json:"currency"`
	MoneyOnHand       decimal.Decimal `json:"moneyOnHand"`
	Savings           decimal.Decimal `json:"savings"`
	InitialBalance    decimal.Decimal `json:"initialBalance"`
	ClosingBalance    decimal.Decimal `json:"closingBalance"`
	IncomeSum         decimal.Decimal `json:"incomeSum"`
	ExpenseSum        decimal.Decimal `json:"expenseSum"`
	IncomingTransfers decimal.Decimal `json:"incomingTransfers"`
	OutgoingTransfers decimal.Decimal `json:"outgoingTransfers"`
}
