package pgsql

import (
	"context"

	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository bundles every repository the month-close sequence
// touches. Its zero-value form runs against the pool; WithTransaction hands
// the closure a copy bound to a single transaction, so every statement the
// close issues either commits or rolls back together.
type PgxLedgerRepository struct {
	BaseRepository
	*PgxEntryRepository
	*PgxTransferRepository
	*PgxSavingsRepository
	*PgxBalanceRepository
	*PgxMonthCloseRepository
}

// newPgxLedgerRepository creates the transactional facade over the ledger
// repositories.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository:          BaseRepository{Pool: pool},
		PgxEntryRepository:      newPgxEntryRepository(pool),
		PgxTransferRepository:   newPgxTransferRepository(pool),
		PgxSavingsRepository:    newPgxSavingsRepository(pool),
		PgxBalanceRepository:    newPgxBalanceRepository(pool),
		PgxMonthCloseRepository: newPgxMonthCloseRepository(pool),
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerCloserWithTx
var _ portsrepo.LedgerCloserWithTx = (*PgxLedgerRepository)(nil)

// WithTransaction executes fn within a single database transaction. The
// LedgerCloser passed to fn routes every query through that transaction,
// which commits when fn returns nil and rolls back otherwise.
func (r *PgxLedgerRepository) WithTransaction(ctx context.Context, fn func(portsrepo.LedgerCloser) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	base := BaseRepository{Pool: r.Pool, tx: tx}
	txRepo := &PgxLedgerRepository{
		BaseRepository:          base,
		PgxEntryRepository:      &PgxEntryRepository{BaseRepository: base},
		PgxTransferRepository:   &PgxTransferRepository{BaseRepository: base},
		PgxSavingsRepository:    &PgxSavingsRepository{BaseRepository: base},
		PgxBalanceRepository:    &PgxBalanceRepository{BaseRepository: base},
		PgxMonthCloseRepository: &PgxMonthCloseRepository{BaseRepository: base},
	}

	if err := fn(txRepo); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
