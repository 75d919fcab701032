package dto

import (
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to move funds between the
// money-on-hand and savings accounts. Account names accept both the API
// vocabulary (money_on_hand/savings) and the ledger one (Balance/Savings).
type CreateTransferRequest struct {
	FromAccount string          `json:"from_account" binding:"required"`
	ToAccount   string          `json:"to_account" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Note        string          `json:"note"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID  string          `json:"transferID"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note"`
	Locked      bool            `json:"locked"`
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	Limit  int `form:"limit,default=30"`
	Offset int `form:"offset,default=0"`
}

// ToTransferResponse converts a domain.Transfer to a TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:  t.TransferID,
		Currency:    t.Currency,
		Amount:      t.Amount,
		FromAccount: string(t.FromAccount),
		ToAccount:   string(t.ToAccount),
		Date:        t.Date,
		Note:        t.Note,
		Locked:      t.Locked,
	}
}

// ToTransferResponses converts a slice of domain transfers to DTOs
func ToTransferResponses(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}
