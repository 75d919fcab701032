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
	"github.com/shopspring/decimal"
)

// ErrMonthAlreadyClosed is returned when a close is attempted for a
// (currency, month) that already carries a close marker.
var ErrMonthAlreadyClosed = errors.New("month already closed for currency")

// monthCloseService orchestrates the month-close reconciliation: it sums the
// open ledger, locks it, snapshots savings, writes the audit trail and rolls
// the closing balance into the next month's opening balance.
type monthCloseService struct {
	ledgerRepo portsrepo.LedgerCloserWithTx
}

// NewMonthCloseService creates a new MonthCloseService.
func NewMonthCloseService(ledgerRepo portsrepo.LedgerCloserWithTx) portssvc.MonthCloseSvcFacade {
	return &monthCloseService{ledgerRepo: ledgerRepo}
}

// Ensure monthCloseService implements the portssvc.MonthCloseSvcFacade interface
var _ portssvc.MonthCloseSvcFacade = (*monthCloseService)(nil)

// CloseMonth reconciles and locks a month for every currency in the request.
// The whole multi-currency batch runs inside one database transaction: a
// failure on any currency rolls back every currency, so a batch never
// half-closes. Closing an already-closed (currency, month) is rejected.
func (s *monthCloseService) CloseMonth(ctx context.Context, userID string, req dto.CloseMonthRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	month, err := domain.ParseMonth(req.Month)
	if err != nil {
		return apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}
	if len(req.Balances) == 0 {
		return apperrors.NewAppError(400, "at least one currency is required", apperrors.ErrValidation)
	}

	// The close window runs from the first instant of the month to the wall
	// clock, not to month end. Closing mid-month leaves later-dated rows
	// unlocked for the next close.
	now := time.Now()
	start := month.Start()

	err = s.ledgerRepo.WithTransaction(ctx, func(repo portsrepo.LedgerCloser) error {
		for _, b := range req.Balances {
			if err := s.closeCurrency(ctx, repo, userID, month, start, now, b); err != nil {
				return fmt.Errorf("close failed for currency %s: %w", b.Currency, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Month close failed", "month", month, "error", err)
		return err
	}

	logger.Info("Month closed", "month", month, "currencies", len(req.Balances))
	return nil
}

// closeCurrency runs the full close sequence for one currency inside the
// batch transaction.
func (s *monthCloseService) closeCurrency(ctx context.Context, repo portsrepo.LedgerCloser, userID string, month domain.Month, start, now time.Time, b dto.CurrencyCloseRequest) error {
	currency := b.Currency

	// Serialize concurrent closes of the same (user, currency, month).
	if err := repo.AcquireCloseLock(ctx, userID, currency, month); err != nil {
		return err
	}

	_, err := repo.FindClosedMonth(ctx, userID, currency, month)
	if err == nil {
		return fmt.Errorf("%w: %s %s", ErrMonthAlreadyClosed, currency, month)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	// Opening balance; a currency that was never declared starts at zero.
	initialAmount := decimal.Zero
	snapshot, err := repo.FindBalanceByMonth(ctx, userID, currency, month)
	if err == nil {
		initialAmount = snapshot.InitialAmount
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	// Sum the open ledger before anything gets locked. Rows locked by an
	// earlier close in this window must not be counted again.
	incomeSum, err := repo.SumEntries(ctx, portsrepo.EntrySumFilter{
		UserID: userID, Currency: currency, Category: domain.Income,
		From: start, To: now, UnlockedOnly: true,
	})
	if err != nil {
		return err
	}
	expenseSum, err := repo.SumEntries(ctx, portsrepo.EntrySumFilter{
		UserID: userID, Currency: currency, Category: domain.Expense,
		From: start, To: now, UnlockedOnly: true,
	})
	if err != nil {
		return err
	}
	incomingTransfers, err := repo.SumTransfers(ctx, portsrepo.TransferSumFilter{
		UserID: userID, Currency: currency,
		FromAccount: domain.AccountSavings, ToAccount: domain.AccountBalance,
		From: start, To: now, UnlockedOnly: true,
	})
	if err != nil {
		return err
	}
	outgoingTransfers, err := repo.SumTransfers(ctx, portsrepo.TransferSumFilter{
		UserID: userID, Currency: currency,
		FromAccount: domain.AccountBalance, ToAccount: domain.AccountSavings,
		From: start, To: now, UnlockedOnly: true,
	})
	if err != nil {
		return err
	}

	// Savings accrued this month: unlocked rows in the window, minus any
	// auto snapshot. Summed before the lock below flips every row.
	startDate := truncateToDate(start)
	endDate := truncateToDate(now)
	calculatedSavings, err := repo.SumSavingsInWindow(ctx, portsrepo.SavingsSumFilter{
		UserID: userID, Currency: currency,
		From: startDate, To: endDate,
		UnlockedOnly: true,
		ExcludeNote:  domain.AutoSnapshotNote(month),
	})
	if err != nil {
		return err
	}

	// Lock the window unconditionally across all three ledgers.
	if _, err := repo.LockEntriesInWindow(ctx, userID, currency, start, now); err != nil {
		return err
	}
	if _, err := repo.LockTransfersInWindow(ctx, userID, currency, start, now); err != nil {
		return err
	}
	if _, err := repo.LockSavingsInWindow(ctx, userID, currency, startDate, endDate); err != nil {
		return err
	}

	// Declarative savings checkpoint carrying the user-entered figure.
	autoSnapshot := domain.Savings{
		SavingsID: uuid.NewString(),
		UserID:    userID,
		Currency:  currency,
		Amount:    b.Savings,
		Date:      endDate,
		Note:      domain.AutoSnapshotNote(month),
		Locked:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := repo.SaveSavings(ctx, autoSnapshot); err != nil {
		return err
	}

	calculatedMoneyOnHand := initialAmount.
		Add(incomeSum).
		Sub(expenseSum).
		Add(incomingTransfers).
		Sub(outgoingTransfers)

	audit := domain.MonthCloseAudit{
		AuditID:               uuid.NewString(),
		UserID:                userID,
		Currency:              currency,
		Month:                 month,
		CalculatedMoneyOnHand: calculatedMoneyOnHand,
		EnteredMoneyOnHand:    b.MoneyOnHand,
		CalculatedSavings:     calculatedSavings,
		EnteredSavings:        b.Savings,
		DifferenceMoneyOnHand: b.MoneyOnHand.Sub(calculatedMoneyOnHand),
		DifferenceSavings:     b.Savings.Sub(calculatedSavings),
		ClosedAt:              now,
	}
	if err := repo.SaveMonthCloseAudit(ctx, audit); err != nil {
		return err
	}

	// The entered figure wins as the canonical closing balance, and seeds
	// next month's opening position.
	if err := repo.UpsertClosingBalance(ctx, userID, currency, month, b.MoneyOnHand, userID, now); err != nil {
		return err
	}
	if err := repo.UpsertClosedMonth(ctx, domain.ClosedMonth{
		ClosedMonthID: uuid.NewString(),
		UserID:        userID,
		Currency:      currency,
		Month:         month,
		ClosedAt:      now,
	}); err != nil {
		return err
	}
	if err := repo.UpsertOpeningBalance(ctx, userID, currency, month.Next(), b.MoneyOnHand, userID, now); err != nil {
		return err
	}

	return nil
}

// NeedsClosing reports whether the given month has ledger activity that has
// not been closed yet.
func (s *monthCloseService) NeedsClosing(ctx context.Context, userID string, month domain.Month) (bool, error) {
	start := month.Start()
	end := month.End()

	entryCount, err := s.ledgerRepo.CountEntriesInWindow(ctx, userID, start, end)
	if err != nil {
		return false, err
	}
	savingsCount, err := s.ledgerRepo.CountSavingsInWindow(ctx, userID, truncateToDate(start), truncateToDate(end))
	if err != nil {
		return false, err
	}
	transferCount, err := s.ledgerRepo.CountTransfersInWindow(ctx, userID, start, end)
	if err != nil {
		return false, err
	}
	if entryCount == 0 && savingsCount == 0 && transferCount == 0 {
		return false, nil
	}

	closed, err := s.ledgerRepo.HasClosedMonth(ctx, userID, month)
	if err != nil {
		return false, err
	}
	return !closed, nil
}

// ClosedCurrencies lists the currencies already closed for a month.
func (s *monthCloseService) ClosedCurrencies(ctx context.Context, userID string, month domain.Month) ([]string, error) {
	return s.ledgerRepo.ListClosedCurrencies(ctx, userID, month)
}

// ListAudits returns the reconciliation audit trail for a month.
func (s *monthCloseService) ListAudits(ctx context.Context, userID string, month domain.Month) ([]domain.MonthCloseAudit, error) {
	return s.ledgerRepo.ListAudits(ctx, userID, month)
}
