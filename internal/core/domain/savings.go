package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Savings represents one row in the savings ledger: an initial declaration,
// a transfer mirror, or a month-close snapshot. The running sum of all rows
// for a user/currency up to a date is the total savings as of that date.
type Savings struct {
	SavingsID  string          `json:"savingsID"` // Primary Key (e.g., UUID)
	UserID     string          `json:"userID"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"` // Transfer mirrors may be negative
	Date       time.Time       `json:"date"`   // Calendar date only, no time component
	Note       string          `json:"note"`
	TransferID *string         `json:"transferID,omitempty"` // Set on transfer-mirror rows
	Locked     bool            `json:"locked"`
	AuditFields
}

// AutoSnapshotNote returns the note carried by the savings snapshot the
// month close writes for the given month.
func AutoSnapshotNote(month Month) string {
	return "Auto-saved for " + month.String()
}
