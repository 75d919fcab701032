package services_test

import (
	"context"
	"testing"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/core/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MonthCloseServiceTestSuite struct {
	suite.Suite
	ledger  *MockLedgerRepository
	service portssvc.MonthCloseSvcFacade
	userID  string
	month   domain.Month
}

func (suite *MonthCloseServiceTestSuite) SetupTest() {
	suite.ledger = NewMockLedgerRepository()
	suite.service = services.NewMonthCloseService(suite.ledger)
	suite.userID = uuid.NewString()
	suite.month = domain.Month("2025-05")
}

// closeFigures bundles the ledger sums one currency's close should see.
type closeFigures struct {
	initialAmount     decimal.Decimal
	incomeSum         decimal.Decimal
	expenseSum        decimal.Decimal
	incomingTransfers decimal.Decimal
	outgoingTransfers decimal.Decimal
	calculatedSavings decimal.Decimal
	declared          bool
}

// expectCloseSequence wires the full happy-path expectations for one
// currency and returns pointers that capture the written audit and snapshot.
func (suite *MonthCloseServiceTestSuite) expectCloseSequence(currency string, fig closeFigures) (*domain.MonthCloseAudit, *domain.Savings) {
	ctx := context.Background()
	capturedAudit := &domain.MonthCloseAudit{}
	capturedSnapshot := &domain.Savings{}

	suite.ledger.MockMonthCloseRepository.On("AcquireCloseLock", ctx, suite.userID, currency, suite.month).Return(nil).Once()
	suite.ledger.MockMonthCloseRepository.On("FindClosedMonth", ctx, suite.userID, currency, suite.month).Return(nil, apperrors.ErrNotFound).Once()

	if fig.declared {
		suite.ledger.MockBalanceRepository.On("FindBalanceByMonth", ctx, suite.userID, currency, suite.month).
			Return(&domain.BalanceSnapshot{
				BalanceID:     uuid.NewString(),
				UserID:        suite.userID,
				Currency:      currency,
				Month:         suite.month,
				InitialAmount: fig.initialAmount,
				Amount:        fig.initialAmount,
			}, nil).Once()
	} else {
		suite.ledger.MockBalanceRepository.On("FindBalanceByMonth", ctx, suite.userID, currency, suite.month).
			Return(nil, apperrors.ErrNotFound).Once()
	}

	suite.ledger.MockEntryRepository.On("SumEntries", ctx, mock.MatchedBy(func(f portsrepo.EntrySumFilter) bool {
		return f.Currency == currency && f.Category == domain.Income && f.UnlockedOnly
	})).Return(fig.incomeSum, nil).Once()
	suite.ledger.MockEntryRepository.On("SumEntries", ctx, mock.MatchedBy(func(f portsrepo.EntrySumFilter) bool {
		return f.Currency == currency && f.Category == domain.Expense && f.UnlockedOnly
	})).Return(fig.expenseSum, nil).Once()

	suite.ledger.MockTransferRepository.On("SumTransfers", ctx, mock.MatchedBy(func(f portsrepo.TransferSumFilter) bool {
		return f.Currency == currency && f.FromAccount == domain.AccountSavings && f.ToAccount == domain.AccountBalance && f.UnlockedOnly
	})).Return(fig.incomingTransfers, nil).Once()
	suite.ledger.MockTransferRepository.On("SumTransfers", ctx, mock.MatchedBy(func(f portsrepo.TransferSumFilter) bool {
		return f.Currency == currency && f.FromAccount == domain.AccountBalance && f.ToAccount == domain.AccountSavings && f.UnlockedOnly
	})).Return(fig.outgoingTransfers, nil).Once()

	suite.ledger.MockSavingsRepository.On("SumSavingsInWindow", ctx, mock.MatchedBy(func(f portsrepo.SavingsSumFilter) bool {
		return f.Currency == currency && f.UnlockedOnly && f.ExcludeNote == domain.AutoSnapshotNote(suite.month)
	})).Return(fig.calculatedSavings, nil).Once()

	suite.ledger.MockEntryRepository.On("LockEntriesInWindow", ctx, suite.userID, currency, mock.Anything, mock.Anything).Return(int64(2), nil).Once()
	suite.ledger.MockTransferRepository.On("LockTransfersInWindow", ctx, suite.userID, currency, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	suite.ledger.MockSavingsRepository.On("LockSavingsInWindow", ctx, suite.userID, currency, mock.Anything, mock.Anything).Return(int64(1), nil).Once()

	suite.ledger.MockSavingsRepository.On("SaveSavings", ctx, mock.MatchedBy(func(s domain.Savings) bool {
		return s.Currency == currency && s.Note == domain.AutoSnapshotNote(suite.month) && s.Locked
	})).Run(func(args mock.Arguments) {
		*capturedSnapshot = args.Get(1).(domain.Savings)
	}).Return(nil).Once()

	suite.ledger.MockMonthCloseRepository.On("SaveMonthCloseAudit", ctx, mock.MatchedBy(func(a domain.MonthCloseAudit) bool {
		return a.Currency == currency && a.Month == suite.month
	})).Run(func(args mock.Arguments) {
		*capturedAudit = args.Get(1).(domain.MonthCloseAudit)
	}).Return(nil).Once()

	suite.ledger.MockBalanceRepository.On("UpsertClosingBalance", ctx, suite.userID, currency, suite.month, mock.Anything, suite.userID, mock.Anything).Return(nil).Once()
	suite.ledger.MockMonthCloseRepository.On("UpsertClosedMonth", ctx, mock.MatchedBy(func(c domain.ClosedMonth) bool {
		return c.Currency == currency && c.Month == suite.month
	})).Return(nil).Once()
	suite.ledger.MockBalanceRepository.On("UpsertOpeningBalance", ctx, suite.userID, currency, suite.month.Next(), mock.Anything, suite.userID, mock.Anything).Return(nil).Once()

	return capturedAudit, capturedSnapshot
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_Success() {
	ctx := context.Background()

	// 1000 opening + 500 income - 100 expenses + 100 in - 50 out = 1450
	audit, snapshot := suite.expectCloseSequence("EUR", closeFigures{
		initialAmount:     decimal.NewFromInt(1000),
		incomeSum:         decimal.NewFromInt(500),
		expenseSum:        decimal.NewFromInt(100),
		incomingTransfers: decimal.NewFromInt(100),
		outgoingTransfers: decimal.NewFromInt(50),
		calculatedSavings: decimal.NewFromInt(200),
		declared:          true,
	})

	err := suite.service.CloseMonth(ctx, suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "EUR", MoneyOnHand: decimal.NewFromInt(1450), Savings: decimal.NewFromInt(200)},
		},
	})

	suite.Require().NoError(err)

	suite.True(audit.CalculatedMoneyOnHand.Equal(decimal.NewFromInt(1450)), "calculated money on hand: %s", audit.CalculatedMoneyOnHand)
	suite.True(audit.DifferenceMoneyOnHand.IsZero(), "difference money on hand: %s", audit.DifferenceMoneyOnHand)
	suite.True(audit.CalculatedSavings.Equal(decimal.NewFromInt(200)))
	suite.True(audit.DifferenceSavings.IsZero())
	suite.Equal(suite.userID, audit.UserID)

	// The auto snapshot carries the user-entered savings figure, locked.
	suite.True(snapshot.Amount.Equal(decimal.NewFromInt(200)))
	suite.True(snapshot.Locked)
	suite.Equal(suite.userID, snapshot.UserID)

	suite.ledger.MockEntryRepository.AssertExpectations(suite.T())
	suite.ledger.MockTransferRepository.AssertExpectations(suite.T())
	suite.ledger.MockSavingsRepository.AssertExpectations(suite.T())
	suite.ledger.MockBalanceRepository.AssertExpectations(suite.T())
	suite.ledger.MockMonthCloseRepository.AssertExpectations(suite.T())
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_RecordsShortfall() {
	ctx := context.Background()

	audit, _ := suite.expectCloseSequence("EUR", closeFigures{
		initialAmount:     decimal.NewFromInt(1000),
		incomeSum:         decimal.NewFromInt(500),
		expenseSum:        decimal.NewFromInt(100),
		incomingTransfers: decimal.NewFromInt(100),
		outgoingTransfers: decimal.NewFromInt(50),
		calculatedSavings: decimal.NewFromInt(200),
		declared:          true,
	})

	// User counted 1400 in the wallet against a calculated 1450.
	err := suite.service.CloseMonth(ctx, suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "EUR", MoneyOnHand: decimal.NewFromInt(1400), Savings: decimal.NewFromInt(180)},
		},
	})

	suite.Require().NoError(err)
	suite.True(audit.DifferenceMoneyOnHand.Equal(decimal.NewFromInt(-50)), "difference: %s", audit.DifferenceMoneyOnHand)
	suite.True(audit.DifferenceSavings.Equal(decimal.NewFromInt(-20)), "savings difference: %s", audit.DifferenceSavings)
	suite.True(audit.EnteredMoneyOnHand.Equal(decimal.NewFromInt(1400)))
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_UndeclaredCurrencyStartsAtZero() {
	ctx := context.Background()

	audit, _ := suite.expectCloseSequence("USD", closeFigures{
		incomeSum:         decimal.NewFromInt(300),
		expenseSum:        decimal.NewFromInt(120),
		incomingTransfers: decimal.Zero,
		outgoingTransfers: decimal.Zero,
		calculatedSavings: decimal.Zero,
		declared:          false,
	})

	err := suite.service.CloseMonth(ctx, suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "USD", MoneyOnHand: decimal.NewFromInt(180), Savings: decimal.Zero},
		},
	})

	suite.Require().NoError(err)
	suite.True(audit.CalculatedMoneyOnHand.Equal(decimal.NewFromInt(180)), "calculated: %s", audit.CalculatedMoneyOnHand)
	suite.True(audit.DifferenceMoneyOnHand.IsZero())
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_AlreadyClosed() {
	ctx := context.Background()

	suite.ledger.MockMonthCloseRepository.On("AcquireCloseLock", ctx, suite.userID, "EUR", suite.month).Return(nil).Once()
	suite.ledger.MockMonthCloseRepository.On("FindClosedMonth", ctx, suite.userID, "EUR", suite.month).
		Return(&domain.ClosedMonth{
			ClosedMonthID: uuid.NewString(),
			UserID:        suite.userID,
			Currency:      "EUR",
			Month:         suite.month,
		}, nil).Once()

	err := suite.service.CloseMonth(ctx, suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "EUR", MoneyOnHand: decimal.NewFromInt(100), Savings: decimal.Zero},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMonthAlreadyClosed)
	suite.ledger.MockEntryRepository.AssertNotCalled(suite.T(), "LockEntriesInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.ledger.MockSavingsRepository.AssertNotCalled(suite.T(), "SaveSavings", mock.Anything, mock.Anything)
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_BatchFailsWhenOneCurrencyClosed() {
	ctx := context.Background()

	// EUR closes cleanly, then USD turns out to be already closed; the
	// whole batch errors so the transaction rolls back.
	suite.expectCloseSequence("EUR", closeFigures{
		initialAmount:     decimal.NewFromInt(1000),
		incomeSum:         decimal.NewFromInt(500),
		expenseSum:        decimal.NewFromInt(100),
		incomingTransfers: decimal.Zero,
		outgoingTransfers: decimal.Zero,
		calculatedSavings: decimal.Zero,
		declared:          true,
	})

	suite.ledger.MockMonthCloseRepository.On("AcquireCloseLock", ctx, suite.userID, "USD", suite.month).Return(nil).Once()
	suite.ledger.MockMonthCloseRepository.On("FindClosedMonth", ctx, suite.userID, "USD", suite.month).
		Return(&domain.ClosedMonth{
			ClosedMonthID: uuid.NewString(),
			UserID:        suite.userID,
			Currency:      "USD",
			Month:         suite.month,
		}, nil).Once()

	err := suite.service.CloseMonth(ctx, suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "EUR", MoneyOnHand: decimal.NewFromInt(1400), Savings: decimal.Zero},
			{Currency: "USD", MoneyOnHand: decimal.NewFromInt(100), Savings: decimal.Zero},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMonthAlreadyClosed)
	suite.Contains(err.Error(), "USD")
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_InvalidMonth() {
	err := suite.service.CloseMonth(context.Background(), suite.userID, dto.CloseMonthRequest{
		Month: "May 2025",
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "EUR", MoneyOnHand: decimal.NewFromInt(100), Savings: decimal.Zero},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_EmptyBatch() {
	err := suite.service.CloseMonth(context.Background(), suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MonthCloseServiceTestSuite) TestCloseMonth_RollsClosingBalanceForward() {
	ctx := context.Background()
	entered := decimal.NewFromInt(777)

	suite.expectCloseSequence("EUR", closeFigures{
		initialAmount:     decimal.NewFromInt(700),
		incomeSum:         decimal.NewFromInt(77),
		expenseSum:        decimal.Zero,
		incomingTransfers: decimal.Zero,
		outgoingTransfers: decimal.Zero,
		calculatedSavings: decimal.Zero,
		declared:          true,
	})

	err := suite.service.CloseMonth(ctx, suite.userID, dto.CloseMonthRequest{
		Month: suite.month.String(),
		Balances: []dto.CurrencyCloseRequest{
			{Currency: "EUR", MoneyOnHand: entered, Savings: decimal.Zero},
		},
	})

	suite.Require().NoError(err)
	// The entered figure, not the calculated one, both closes this month
	// and seeds June's opening balance.
	suite.ledger.MockBalanceRepository.AssertCalled(suite.T(), "UpsertClosingBalance", ctx, suite.userID, "EUR", suite.month, entered, suite.userID, mock.Anything)
	suite.ledger.MockBalanceRepository.AssertCalled(suite.T(), "UpsertOpeningBalance", ctx, suite.userID, "EUR", domain.Month("2025-06"), entered, suite.userID, mock.Anything)
}

func (suite *MonthCloseServiceTestSuite) TestNeedsClosing_NoActivity() {
	ctx := context.Background()

	suite.ledger.MockEntryRepository.On("CountEntriesInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.ledger.MockSavingsRepository.On("CountSavingsInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.ledger.MockTransferRepository.On("CountTransfersInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	needs, err := suite.service.NeedsClosing(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.False(needs)
	suite.ledger.MockMonthCloseRepository.AssertNotCalled(suite.T(), "HasClosedMonth", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MonthCloseServiceTestSuite) TestNeedsClosing_OpenActivity() {
	ctx := context.Background()

	suite.ledger.MockEntryRepository.On("CountEntriesInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(3), nil).Once()
	suite.ledger.MockSavingsRepository.On("CountSavingsInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.ledger.MockTransferRepository.On("CountTransfersInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.ledger.MockMonthCloseRepository.On("HasClosedMonth", ctx, suite.userID, suite.month).Return(false, nil).Once()

	needs, err := suite.service.NeedsClosing(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.True(needs)
}

func (suite *MonthCloseServiceTestSuite) TestNeedsClosing_AlreadyClosed() {
	ctx := context.Background()

	suite.ledger.MockEntryRepository.On("CountEntriesInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(3), nil).Once()
	suite.ledger.MockSavingsRepository.On("CountSavingsInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	suite.ledger.MockTransferRepository.On("CountTransfersInWindow", ctx, suite.userID, mock.Anything, mock.Anything).Return(int64(2), nil).Once()
	suite.ledger.MockMonthCloseRepository.On("HasClosedMonth", ctx, suite.userID, suite.month).Return(true, nil).Once()

	needs, err := suite.service.NeedsClosing(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.False(needs)
}

func (suite *MonthCloseServiceTestSuite) TestClosedCurrencies() {
	ctx := context.Background()
	suite.ledger.MockMonthCloseRepository.On("ListClosedCurrencies", ctx, suite.userID, suite.month).Return([]string{"EUR", "USD"}, nil).Once()

	currencies, err := suite.service.ClosedCurrencies(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD"}, currencies)
}

func TestMonthCloseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonthCloseServiceTestSuite))
}
