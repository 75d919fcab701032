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

type BalanceServiceTestSuite struct {
	suite.Suite
	balanceRepo  *MockBalanceRepository
	entryRepo    *MockEntryRepository
	transferRepo *MockTransferRepository
	savingsRepo  *MockSavingsRepository
	service      portssvc.BalanceSvcFacade
	userID       string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.balanceRepo = new(MockBalanceRepository)
	suite.entryRepo = new(MockEntryRepository)
	suite.transferRepo = new(MockTransferRepository)
	suite.savingsRepo = new(MockSavingsRepository)
	suite.service = services.NewBalanceService(suite.balanceRepo, suite.entryRepo, suite.transferRepo, suite.savingsRepo)
	suite.userID = uuid.NewString()
}

func (suite *BalanceServiceTestSuite) TestDeclareInitialBalance_Success() {
	ctx := context.Background()
	req := dto.DeclareBalanceRequest{
		Currency: "EUR",
		Amount:   decimal.NewFromInt(2500),
		Month:    "2025-03",
	}

	suite.balanceRepo.On("FindAnyBalanceForCurrency", ctx, suite.userID, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.balanceRepo.On("SaveBalanceSnapshot", ctx, mock.MatchedBy(func(s domain.BalanceSnapshot) bool {
		return s.Currency == "EUR" &&
			s.Month == domain.Month("2025-03") &&
			s.InitialAmount.Equal(decimal.NewFromInt(2500)) &&
			s.Amount.Equal(decimal.NewFromInt(2500))
	})).Return(nil).Once()

	snapshot, err := suite.service.DeclareInitialBalance(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Equal(suite.userID, snapshot.UserID)
	suite.NotEmpty(snapshot.BalanceID)
	suite.balanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestDeclareInitialBalance_AlreadyDeclared() {
	ctx := context.Background()

	suite.balanceRepo.On("FindAnyBalanceForCurrency", ctx, suite.userID, "EUR").
		Return(&domain.BalanceSnapshot{
			BalanceID: uuid.NewString(),
			UserID:    suite.userID,
			Currency:  "EUR",
			Month:     domain.Month("2025-01"),
		}, nil).Once()

	snapshot, err := suite.service.DeclareInitialBalance(ctx, suite.userID, dto.DeclareBalanceRequest{
		Currency: "EUR",
		Amount:   decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.balanceRepo.AssertNotCalled(suite.T(), "SaveBalanceSnapshot", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestDeclareInitialBalance_InvalidMonth() {
	ctx := context.Background()

	suite.balanceRepo.On("FindAnyBalanceForCurrency", ctx, suite.userID, "EUR").Return(nil, apperrors.ErrNotFound).Once()

	snapshot, err := suite.service.DeclareInitialBalance(ctx, suite.userID, dto.DeclareBalanceRequest{
		Currency: "EUR",
		Amount:   decimal.NewFromInt(100),
		Month:    "03-2025",
	})

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BalanceServiceTestSuite) TestGetPositions() {
	ctx := context.Background()
	month := domain.Month("2025-04")
	start := month.Start()
	end := month.End()

	suite.balanceRepo.On("ListBalancesByMonth", ctx, suite.userID, month).
		Return([]domain.BalanceSnapshot{
			{
				BalanceID:     uuid.NewString(),
				UserID:        suite.userID,
				Currency:      "EUR",
				Month:         month,
				InitialAmount: decimal.NewFromInt(1000),
				Amount:        decimal.NewFromInt(1000),
			},
		}, nil).Once()

	suite.entryRepo.On("SumEntries", ctx, portsrepo.EntrySumFilter{
		UserID: suite.userID, Currency: "EUR", Category: domain.Income, From: start, To: end,
	}).Return(decimal.NewFromInt(500), nil).Once()
	suite.entryRepo.On("SumEntries", ctx, portsrepo.EntrySumFilter{
		UserID: suite.userID, Currency: "EUR", Category: domain.Expense, From: start, To: end,
	}).Return(decimal.RequireFromString("123.456"), nil).Once()

	suite.transferRepo.On("SumTransfers", ctx, portsrepo.TransferSumFilter{
		UserID: suite.userID, Currency: "EUR",
		FromAccount: domain.AccountSavings, ToAccount: domain.AccountBalance,
		From: start, To: end,
	}).Return(decimal.NewFromInt(200), nil).Once()
	suite.transferRepo.On("SumTransfers", ctx, portsrepo.TransferSumFilter{
		UserID: suite.userID, Currency: "EUR",
		FromAccount: domain.AccountBalance, ToAccount: domain.AccountSavings,
		From: start, To: end,
	}).Return(decimal.NewFromInt(80), nil).Once()

	suite.savingsRepo.On("SumSavingsThrough", ctx, suite.userID, "EUR", end).
		Return(decimal.NewFromInt(640), nil).Once()

	positions, err := suite.service.GetPositions(ctx, suite.userID, month)

	suite.Require().NoError(err)
	suite.Require().Len(positions, 1)

	pos := positions[0]
	suite.Equal("EUR", pos.Currency)
	// 1000 + 500 - 123.456 + 200 - 80 = 1496.544, rounded to 1496.54
	suite.True(pos.MoneyOnHand.Equal(decimal.RequireFromString("1496.54")), "money on hand: %s", pos.MoneyOnHand)
	suite.True(pos.Savings.Equal(decimal.NewFromInt(640)))
	suite.True(pos.IncomeSum.Equal(decimal.NewFromInt(500)))
	suite.True(pos.OutgoingTransfers.Equal(decimal.NewFromInt(80)))

	suite.entryRepo.AssertExpectations(suite.T())
	suite.transferRepo.AssertExpectations(suite.T())
	suite.savingsRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetPositions_NoDeclaredCurrencies() {
	ctx := context.Background()
	month := domain.Month("2025-04")

	suite.balanceRepo.On("ListBalancesByMonth", ctx, suite.userID, month).
		Return([]domain.BalanceSnapshot{}, nil).Once()

	positions, err := suite.service.GetPositions(ctx, suite.userID, month)

	suite.Require().NoError(err)
	suite.Empty(positions)
	suite.entryRepo.AssertNotCalled(suite.T(), "SumEntries", mock.Anything, mock.Anything)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
