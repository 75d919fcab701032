package services

import (
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.EntryType = NewEntryTypeService(repos.EntryTypeRepo)
	container.Entry = NewEntryService(repos.EntryRepo, repos.EntryTypeRepo)
	container.Transfer = NewTransferService(repos.TransferRepo)
	container.Savings = NewSavingsService(repos.SavingsRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.EntryRepo, repos.TransferRepo, repos.SavingsRepo)
	container.MonthClose = NewMonthCloseService(repos.LedgerRepo)
	container.Reporting = NewReportingService(repos.EntryRepo, repos.TransferRepo, repos.SavingsRepo, repos.BalanceRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.EntrySvcFacade      = (*entryService)(nil)
	_ portssvc.TransferSvcFacade   = (*transferService)(nil)
	_ portssvc.SavingsSvcFacade    = (*savingsService)(nil)
	_ portssvc.BalanceSvcFacade    = (*balanceService)(nil)
	_ portssvc.MonthCloseSvcFacade = (*monthCloseService)(nil)
	_ portssvc.EntryTypeSvcFacade  = (*entryTypeService)(nil)
	_ portssvc.ReportingSvcFacade  = (*reportingService)(nil)
)
