package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountName identifies one of the two per-currency ledger accounts.
type AccountName string

const (
	AccountBalance AccountName = "Balance" // money-on-hand
	AccountSavings AccountName = "Savings"
)

// NormalizeAccountName maps caller vocabulary onto ledger vocabulary.
// The API accepts "money_on_hand"/"savings"; the ledger stores
// "Balance"/"Savings".
func NormalizeAccountName(s string) (AccountName, error) {
	switch s {
	case "money_on_hand", string(AccountBalance):
		return AccountBalance, nil
	case "savings", string(AccountSavings):
		return AccountSavings, nil
	default:
		return "", fmt.Errorf("unknown account name %q", s)
	}
}

// Transfer represents a movement of funds between the Balance and Savings
// accounts for one currency. Every transfer has a mirrored Savings row
// created atomically with it, so the savings ledger stays the single source
// of truth for savings totals.
type Transfer struct {
	TransferID  string          `json:"transferID"` // Primary Key (e.g., UUID)
	UserID      string          `json:"userID"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"` // Positive
	FromAccount AccountName     `json:"fromAccount"`
	ToAccount   AccountName     `json:"toAccount"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note"`
	Locked      bool            `json:"locked"`
	AuditFields
}

// MirrorAmount returns the signed amount of the Savings row mirroring this
// transfer: positive when money enters savings, negative when it leaves.
func (t Transfer) MirrorAmount() decimal.Decimal {
	if t.FromAccount == AccountBalance && t.ToAccount == AccountSavings {
		return t.Amount
	}
	return t.Amount.Neg()
}
