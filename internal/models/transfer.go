package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is the database representation of a Balance<->Savings transfer.
type Transfer struct {
	TransferID  string          `db:"transfer_id"`
	UserID      string          `db:"user_id"`
	Currency    string          `db:"currency"`
	Amount      decimal.Decimal `db:"amount"`
	FromAccount string          `db:"from_account"`
	ToAccount   string          `db:"to_account"`
	Date        time.Time       `db:"date"`
	Note        string          `db:"note"`
	Locked      bool            `db:"locked"`
	AuditFields
}
