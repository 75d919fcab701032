package dto

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeclareBalanceRequest defines the one-time initial balance declaration for
// a currency. Month defaults to the current month when omitted.
type DeclareBalanceRequest struct {
	Currency string          `json:"currency" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Month    string          `json:"month"`
}

// BalanceResponse defines the data returned for a balance snapshot.
type BalanceResponse struct {
	BalanceID     string          `json:"balanceID"`
	Currency      string          `json:"currency"`
	Month         string          `json:"month"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	Amount        decimal.Decimal `json:"amount"`
}

// PositionResponse defines the computed money position for one currency.
type PositionResponse struct {
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

// GetPositionsParams defines query parameters for the positions endpoint.
type GetPositionsParams struct {
	Month string `form:"month"`
}

// ToBalanceResponse converts a domain.BalanceSnapshot to a BalanceResponse DTO
func ToBalanceResponse(b *domain.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		BalanceID:     b.BalanceID,
		Currency:      b.Currency,
		Month:         b.Month.String(),
		InitialAmount: b.InitialAmount,
		Amount:        b.Amount,
	}
}

// ToPositionResponse converts a domain.Position to a PositionResponse DTO
func ToPositionResponse(p domain.Position) PositionResponse {
	return PositionResponse{
		Currency:          p.Currency,
		MoneyOnHand:       p.MoneyOnHand,
		Savings:           p.Savings,
		InitialBalance:    p.InitialBalance,
		ClosingBalance:    p.ClosingBalance,
		IncomeSum:         p.IncomeSum,
		ExpenseSum:        p.ExpenseSum,
		IncomingTransfers: p.IncomingTransfers,
		OutgoingTransfers: p.OutgoingTransfers,
	}
}

// ToPositionResponses converts a slice of domain positions to DTOs
func ToPositionResponses(positions []domain.Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = ToPositionResponse(p)
	}
	return res
}
