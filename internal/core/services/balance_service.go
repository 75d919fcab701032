package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/fadee/my_expenses_app/internal/middleware"
)

// balanceService provides balance snapshot and position operations.
type balanceService struct {
	balanceRepo  portsrepo.BalanceRepositoryFacade
	entryRepo    portsrepo.EntryRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
	savingsRepo  portsrepo.SavingsRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(
	balanceRepo portsrepo.BalanceRepositoryFacade,
	entryRepo portsrepo.EntryRepositoryFacade,
	transferRepo portsrepo.TransferRepositoryFacade,
	savingsRepo portsrepo.SavingsRepositoryFacade,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		balanceRepo:  balanceRepo,
		entryRepo:    entryRepo,
		transferRepo: transferRepo,
		savingsRepo:  savingsRepo,
	}
}

// Ensure balanceService implements the portssvc.BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// DeclareInitialBalance records the user's starting balance for a currency.
// The first snapshot carries the amount as both opening and current balance.
// Declaring twice for the same currency is a conflict regardless of month.
func (s *balanceService) DeclareInitialBalance(ctx context.Context, userID string, req dto.DeclareBalanceRequest) (*domain.BalanceSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.balanceRepo.FindAnyBalanceForCurrency(ctx, userID, req.Currency)
	if err == nil {
		return nil, fmt.Errorf("%w: initial balance already set for currency %s", apperrors.ErrConflict, req.Currency)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing balance: %w", err)
	}

	month := domain.MonthOf(time.Now())
	if req.Month != "" {
		month, err = domain.ParseMonth(req.Month)
		if err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
	}

	now := time.Now()
	snapshot := domain.BalanceSnapshot{
		BalanceID:     uuid.NewString(),
		UserID:        userID,
		Currency:      req.Currency,
		Month:         month,
		InitialAmount: req.Amount,
		Amount:        req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.balanceRepo.SaveBalanceSnapshot(ctx, snapshot); err != nil {
		logger.Error("Failed to save balance snapshot", "error", err)
		return nil, fmt.Errorf("failed to save balance snapshot: %w", err)
	}

	logger.Info("Initial balance declared", "currency", snapshot.Currency, "month", snapshot.Month)
	return &snapshot, nil
}

// GetPositions computes the per-currency position for a month. Sums cover
// every row in the month window regardless of lock state; MoneyOnHand is
// rounded to two decimal places and Savings is the raw running total up to
// the month's end.
func (s *balanceService) GetPositions(ctx context.Context, userID string, month domain.Month) ([]domain.Position, error) {
	snapshots, err := s.balanceRepo.ListBalancesByMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances for month %s: %w", month, err)
	}

	start := month.Start()
	end := month.End()

	positions := make([]domain.Position, 0, len(snapshots))
	for _, snap := range snapshots {
		currency := snap.Currency

		incomeSum, err := s.entryRepo.SumEntries(ctx, portsrepo.EntrySumFilter{
			UserID:   userID,
			Currency: currency,
			Category: domain.Income,
			From:     start,
			To:       end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for %s: %w", currency, err)
		}

		expenseSum, err := s.entryRepo.SumEntries(ctx, portsrepo.EntrySumFilter{
			UserID:   userID,
			Currency: currency,
			Category: domain.Expense,
			From:     start,
			To:       end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for %s: %w", currency, err)
		}

		incomingTransfers, err := s.transferRepo.SumTransfers(ctx, portsrepo.TransferSumFilter{
			UserID:      userID,
			Currency:    currency,
			FromAccount: domain.AccountSavings,
			ToAccount:   domain.AccountBalance,
			From:        start,
			To:          end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum incoming transfers for %s: %w", currency, err)
		}

		outgoingTransfers, err := s.transferRepo.SumTransfers(ctx, portsrepo.TransferSumFilter{
			UserID:      userID,
			Currency:    currency,
			FromAccount: domain.AccountBalance,
			ToAccount:   domain.AccountSavings,
			From:        start,
			To:          end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum outgoing transfers for %s: %w", currency, err)
		}

		totalSavings, err := s.savingsRepo.SumSavingsThrough(ctx, userID, currency, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum savings for %s: %w", currency, err)
		}

		moneyOnHand := snap.InitialAmount.
			Add(incomeSum).
			Sub(expenseSum).
			Add(incomingTransfers).
			Sub(outgoingTransfers)

		positions = append(positions, domain.Position{
			Currency:          currency,
			MoneyOnHand:       moneyOnHand.Round(2),
			Savings:           totalSavings,
			InitialBalance:    snap.InitialAmount,
			ClosingBalance:    snap.Amount,
			IncomeSum:         incomeSum,
			ExpenseSum:        expenseSum,
			IncomingTransfers: incomingTransfers,
			OutgoingTransfers: outgoingTransfers,
		})
	}

	return positions, nil
}
