package dto

import (
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyCloseRequest is one currency's user-reported closing figures.
type CurrencyCloseRequest struct {
	Currency    string          `json:"currency" binding:"required"`
	MoneyOnHand decimal.Decimal `json:"moneyOnHand" binding:"required"`
	Savings     decimal.Decimal `json:"savings" binding:"required"`
}

// CloseMonthRequest asks the orchestrator to close a month for every listed
// currency. The whole batch succeeds or fails together.
type CloseMonthRequest struct {
	Month    string                 `json:"month" binding:"required"`
	Balances []CurrencyCloseRequest `json:"balances" binding:"required,min=1,dive"`
}

// CloseMonthResponse acknowledges a successful close.
type CloseMonthResponse struct {
	Closed bool `json:"closed"`
}

// NeedsClosingResponse reports whether the previous month still has
// unclosed activity.
type NeedsClosingResponse struct {
	NeedsClosing bool `json:"needsClosing"`
}

// ClosedCurrenciesResponse lists the currencies already closed for a month.
type ClosedCurrenciesResponse struct {
	ClosedCurrencies []string `json:"closedCurrencies"`
}

// MonthCloseAuditResponse exposes one reconciliation audit record.
type MonthCloseAuditResponse struct {
	AuditID               string          `json:"auditID"`
	Currency              string          `json:"currency"`
	Month                 string          `json:"month"`
	CalculatedMoneyOnHand decimal.Decimal `json:"calculatedMoneyOnHand"`
	EnteredMoneyOnHand    decimal.Decimal `json:"enteredMoneyOnHand"`
	CalculatedSavings     decimal.Decimal `json:"calculatedSavings"`
	EnteredSavings        decimal.Decimal `json:"enteredSavings"`
	DifferenceMoneyOnHand decimal.Decimal `json:"differenceMoneyOnHand"`
	DifferenceSavings     decimal.Decimal `json:"differenceSavings"`
	ClosedAt              time.Time       `json:"closedAt"`
	Note                  string          `json:"note"`
}

// ToMonthCloseAuditResponse converts a domain.MonthCloseAudit to its DTO
func ToMonthCloseAuditResponse(a *domain.MonthCloseAudit) MonthCloseAuditResponse {
	return MonthCloseAuditResponse{
		AuditID:               a.AuditID,
		Currency:              a.Currency,
		Month:                 a.Month.String(),
		CalculatedMoneyOnHand: a.CalculatedMoneyOnHand,
		EnteredMoneyOnHand:    a.EnteredMoneyOnHand,
		CalculatedSavings:     a.CalculatedSavings,
		EnteredSavings:        a.EnteredSavings,
		DifferenceMoneyOnHand: a.DifferenceMoneyOnHand,
		DifferenceSavings:     a.DifferenceSavings,
		ClosedAt:              a.ClosedAt,
		Note:                  a.Note,
	}
}

// ToMonthCloseAuditResponses converts a slice of audits to DTOs
func ToMonthCloseAuditResponses(audits []domain.MonthCloseAudit) []MonthCloseAuditResponse {
	res := make([]MonthCloseAuditResponse, len(audits))
	for i := range audits {
		res[i] = ToMonthCloseAuditResponse(&audits[i])
	}
	return res
}
