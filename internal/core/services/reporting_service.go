package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/shopspring/decimal"
)

// reportListLimit bounds how many entries a monthly report embeds.
const reportListLimit = 500

// reportingService provides read-only aggregation views over the ledger.
type reportingService struct {
	entryRepo    portsrepo.EntryRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
	savingsRepo  portsrepo.SavingsRepositoryFacade
	balanceRepo  portsrepo.BalanceRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	entryRepo portsrepo.EntryRepositoryFacade,
	transferRepo portsrepo.TransferRepositoryFacade,
	savingsRepo portsrepo.SavingsRepositoryFacade,
	balanceRepo portsrepo.BalanceRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		entryRepo:    entryRepo,
		transferRepo: transferRepo,
		savingsRepo:  savingsRepo,
		balanceRepo:  balanceRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// MonthlyReport aggregates one currency's activity for a month: the entry
// list, income/expense/transfer totals, both savings views and the net
// money-on-hand figure.
func (s *reportingService) MonthlyReport(ctx context.Context, userID string, currency string, month domain.Month) (*dto.MonthlyReportResponse, error) {
	start := month.Start()
	end := month.End()

	incomeEntries, err := s.entryRepo.ListEntries(ctx, userID, domain.Income, start, end, reportListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}
	expenseEntries, err := s.entryRepo.ListEntries(ctx, userID, domain.Expense, start, end, reportListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense entries: %w", err)
	}

	entries := make([]domain.Entry, 0, len(incomeEntries)+len(expenseEntries))
	for _, e := range append(incomeEntries, expenseEntries...) {
		if e.Currency == currency {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	totalIncome, err := s.entryRepo.SumEntries(ctx, portsrepo.EntrySumFilter{
		UserID: userID, Currency: currency, Category: domain.Income, From: start, To: end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	totalExpenses, err := s.entryRepo.SumEntries(ctx, portsrepo.EntrySumFilter{
		UserID: userID, Currency: currency, Category: domain.Expense, From: start, To: end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	incomingTransfers, err := s.transferRepo.SumTransfers(ctx, portsrepo.TransferSumFilter{
		UserID: userID, Currency: currency,
		FromAccount: domain.AccountSavings, ToAccount: domain.AccountBalance,
		From: start, To: end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum incoming transfers: %w", err)
	}
	outgoingTransfers, err := s.transferRepo.SumTransfers(ctx, portsrepo.TransferSumFilter{
		UserID: userID, Currency: currency,
		FromAccount: domain.AccountBalance, ToAccount: domain.AccountSavings,
		From: start, To: end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum outgoing transfers: %w", err)
	}

	// Manual savings only; transfer mirrors are already counted via the
	// transfer sums above.
	savingsThisMonth, err := s.savingsRepo.SumSavingsInWindow(ctx, portsrepo.SavingsSumFilter{
		UserID: userID, Currency: currency,
		From: truncateToDate(start), To: truncateToDate(end),
		ExcludeMirrors: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum savings: %w", err)
	}
	totalSavingsThisMonth, err := s.savingsRepo.SumSavingsThrough(ctx, userID, currency, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum savings running total: %w", err)
	}

	broughtForward := decimal.Zero
	initialBalance := decimal.Zero
	snapshot, err := s.balanceRepo.FindBalanceByMonth(ctx, userID, currency, month)
	if err == nil {
		broughtForward = snapshot.InitialAmount
		initialBalance = snapshot.Amount
	}

	net := initialBalance.
		Add(totalIncome).
		Sub(totalExpenses).
		Add(incomingTransfers).
		Sub(outgoingTransfers)

	return &dto.MonthlyReportResponse{
		Entries:               dto.ToEntryResponses(entries),
		InitialBalance:        initialBalance,
		BroughtForward:        broughtForward,
		TotalIncome:           totalIncome,
		TotalExpenses:         totalExpenses,
		IncomingTransfers:     incomingTransfers,
		OutgoingTransfers:     outgoingTransfers,
		Net:                   net,
		SavingsThisMonth:      savingsThisMonth,
		TotalSavingsThisMonth: totalSavingsThisMonth,
		// From the savings ledger's point of view the directions swap.
		IncomingSavingsTransfers: outgoingTransfers,
		OutgoingSavingsTransfers: incomingTransfers,
	}, nil
}

// DashboardStats summarizes the current month across every currency the
// user has activity in: per-currency income/expense sums for the month,
// balance and savings totals, and overall entry counts.
func (s *reportingService) DashboardStats(ctx context.Context, userID string) (*dto.DashboardStatsResponse, error) {
	month := domain.MonthOf(time.Now())
	start := month.Start()
	end := month.End()

	income, err := s.entryRepo.SumEntriesByCurrency(ctx, userID, domain.Income, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income by currency: %w", err)
	}
	expenses, err := s.entryRepo.SumEntriesByCurrency(ctx, userID, domain.Expense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by currency: %w", err)
	}
	balances, err := s.balanceRepo.SumBalancesByCurrency(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum balances by currency: %w", err)
	}
	savings, err := s.savingsRepo.SumSavingsByCurrency(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum savings by currency: %w", err)
	}

	totalEntries, err := s.entryRepo.CountEntries(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}
	incomeCategory := domain.Income
	incomeCount, err := s.entryRepo.CountEntries(ctx, userID, &incomeCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to count income entries: %w", err)
	}
	expenseCategory := domain.Expense
	expenseCount, err := s.entryRepo.CountEntries(ctx, userID, &expenseCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to count expense entries: %w", err)
	}

	// Zero-fill so every currency appears in every map.
	currencies := make(map[string]struct{})
	for _, m := range []map[string]decimal.Decimal{income, expenses, balances, savings} {
		for c := range m {
			currencies[c] = struct{}{}
		}
	}
	for c := range currencies {
		for _, m := range []map[string]decimal.Decimal{income, expenses, balances, savings} {
			if _, ok := m[c]; !ok {
				m[c] = decimal.Zero
			}
		}
	}

	return &dto.DashboardStatsResponse{
		Income:   income,
		Expenses: expenses,
		Balances: balances,
		Savings:  savings,
		Totals:   dto.DashboardTotals{Entries: totalEntries},
		Counts:   dto.DashboardCounts{Income: incomeCount, Expenses: expenseCount},
	}, nil
}
