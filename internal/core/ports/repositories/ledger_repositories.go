package repositories

import "context"

// LedgerCloser bundles every repository operation the month-close sequence
// touches, so the whole multi-currency batch can run against one database
// transaction.
type LedgerCloser interface {
	EntryReader
	EntryWriter
	TransferReader
	TransferWriter
	SavingsReader
	SavingsWriter
	BalanceReader
	BalanceWriter
	MonthCloseReader
	MonthCloseWriter
}

// LedgerCloserWithTx extends LedgerCloser with a closure-style transaction:
// fn receives a LedgerCloser bound to a single transaction, which commits
// when fn returns nil and rolls back otherwise.
type LedgerCloserWithTx interface {
	LedgerCloser
	WithTransaction(ctx context.Context, fn func(LedgerCloser) error) error
}
