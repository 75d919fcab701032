package repositories

// RepositoryProvider bundles all repository facades for dependency injection.
type RepositoryProvider struct {
	EntryRepo      EntryRepositoryFacade
	TransferRepo   TransferRepositoryFacade
	SavingsRepo    SavingsRepositoryFacade
	BalanceRepo    BalanceRepositoryFacade
	MonthCloseRepo MonthCloseRepositoryFacade
	LedgerRepo     LedgerCloserWithTx
	EntryTypeRepo  EntryTypeRepositoryFacade
	UserRepo       UserRepositoryFacade
}
