package pgsql

import (
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	entryRepo := newPgxEntryRepository(dbPool)
	transferRepo := newPgxTransferRepository(dbPool)
	savingsRepo := newPgxSavingsRepository(dbPool)
	balanceRepo := newPgxBalanceRepository(dbPool)
	monthCloseRepo := newPgxMonthCloseRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	entryTypeRepo := newPgxEntryTypeRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EntryRepo:      entryRepo,
		TransferRepo:   transferRepo,
		SavingsRepo:    savingsRepo,
		BalanceRepo:    balanceRepo,
		MonthCloseRepo: monthCloseRepo,
		LedgerRepo:     ledgerRepo,
		EntryTypeRepo:  entryTypeRepo,
		UserRepo:       userRepo,
	}
}
