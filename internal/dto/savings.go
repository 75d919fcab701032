package dto

import (
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSavingsRequest defines the data for an initial savings declaration.
type CreateSavingsRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Note     string          `json:"note"`
}

// ListSavingsParams defines query parameters for listing savings rows.
// Month defaults to the current month when omitted.
type ListSavingsParams struct {
	Currency string `form:"currency"`
	Month    string `form:"month"`
}

// SavingsResponse defines the data returned for a savings ledger row.
type SavingsResponse struct {
	SavingsID string          `json:"savingsID"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
	Locked    bool            `json:"locked"`
}

// ToSavingsResponse converts a domain.Savings to a SavingsResponse DTO
func ToSavingsResponse(s *domain.Savings) SavingsResponse {
	return SavingsResponse{
		SavingsID: s.SavingsID,
		Currency:  s.Currency,
		Amount:    s.Amount,
		Date:      s.Date,
		Note:      s.Note,
		Locked:    s.Locked,
	}
}

// ToSavingsResponses converts a slice of domain savings rows to DTOs
func ToSavingsResponses(rows []domain.Savings) []SavingsResponse {
	res := make([]SavingsResponse, len(rows))
	for i := range rows {
		res[i] = ToSavingsResponse(&rows[i])
	}
	return res
}
