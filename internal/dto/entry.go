package dto

import (
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record an income or expense.
type CreateEntryRequest struct {
	Amount   decimal.Decimal      `json:"amount" binding:"required"`
	Currency string               `json:"currency" binding:"required"`
	Date     time.Time            `json:"date" binding:"required"`
	Category domain.EntryCategory `json:"category" binding:"required,oneof=income expense"`
	TypeID   string               `json:"typeId" binding:"required"`
	Note     string               `json:"note"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID   string               `json:"entryID"`
	Currency  string               `json:"currency"`
	Amount    decimal.Decimal      `json:"amount"`
	Category  domain.EntryCategory `json:"category"`
	TypeID    string               `json:"typeId"`
	Date      time.Time            `json:"date"`
	Note      string               `json:"note"`
	Locked    bool                 `json:"locked"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Category domain.EntryCategory `form:"category" binding:"required,oneof=income expense"`
	Limit    int                  `form:"limit,default=30"`
	Offset   int                  `form:"offset,default=0"`
}

// ToEntryResponse converts a domain.Entry to an EntryResponse DTO
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:   e.EntryID,
		Currency:  e.Currency,
		Amount:    e.Amount,
		Category:  e.Category,
		TypeID:    e.TypeID,
		Date:      e.Date,
		Note:      e.Note,
		Locked:    e.Locked,
		CreatedAt: e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of domain entries to DTOs
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}
