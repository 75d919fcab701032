package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/core/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SavingsServiceTestSuite struct {
	suite.Suite
	savingsRepo *MockSavingsRepository
	service     portssvc.SavingsSvcFacade
	userID      string
}

func (suite *SavingsServiceTestSuite) SetupTest() {
	suite.savingsRepo = new(MockSavingsRepository)
	suite.service = services.NewSavingsService(suite.savingsRepo)
	suite.userID = uuid.NewString()
}

func (suite *SavingsServiceTestSuite) TestCreateSavings_TruncatesDate() {
	ctx := context.Background()

	var captured domain.Savings
	suite.savingsRepo.On("SaveSavings", ctx, mock.AnythingOfType("domain.Savings")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Savings)
		}).Return(nil).Once()

	savings, err := suite.service.CreateSavings(ctx, suite.userID, dto.CreateSavingsRequest{
		Amount:   decimal.NewFromInt(-20),
		Currency: "EUR",
		Date:     time.Date(2025, 4, 15, 18, 45, 12, 0, time.UTC),
		Note:     "withdrawal",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(savings)
	// Savings rows carry a calendar date, not a timestamp, and negative
	// amounts record withdrawals.
	suite.Equal(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), captured.Date)
	suite.True(captured.Amount.Equal(decimal.NewFromInt(-20)))
	suite.Nil(captured.TransferID)
	suite.False(captured.Locked)
}

func (suite *SavingsServiceTestSuite) TestDeclareInitialSavings_Success() {
	ctx := context.Background()

	suite.savingsRepo.On("FindAnySavingsForCurrency", ctx, suite.userID, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.savingsRepo.On("SaveSavings", ctx, mock.MatchedBy(func(s domain.Savings) bool {
		return s.Currency == "EUR" && s.Amount.Equal(decimal.NewFromInt(5000))
	})).Return(nil).Once()

	savings, err := suite.service.DeclareInitialSavings(ctx, suite.userID, dto.CreateSavingsRequest{
		Amount:   decimal.NewFromInt(5000),
		Currency: "EUR",
		Date:     time.Now(),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(savings)
	suite.savingsRepo.AssertExpectations(suite.T())
}

func (suite *SavingsServiceTestSuite) TestDeclareInitialSavings_AlreadyDeclared() {
	ctx := context.Background()

	suite.savingsRepo.On("FindAnySavingsForCurrency", ctx, suite.userID, "EUR").
		Return(&domain.Savings{
			SavingsID: uuid.NewString(),
			UserID:    suite.userID,
			Currency:  "EUR",
			Amount:    decimal.NewFromInt(300),
		}, nil).Once()

	savings, err := suite.service.DeclareInitialSavings(ctx, suite.userID, dto.CreateSavingsRequest{
		Amount:   decimal.NewFromInt(5000),
		Currency: "EUR",
		Date:     time.Now(),
	})

	suite.Require().Error(err)
	suite.Nil(savings)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.savingsRepo.AssertNotCalled(suite.T(), "SaveSavings", mock.Anything, mock.Anything)
}

func (suite *SavingsServiceTestSuite) TestListSavings_FiltersByCurrency() {
	ctx := context.Background()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	suite.savingsRepo.On("ListSavingsInWindow", ctx, suite.userID, from, to).
		Return([]domain.Savings{
			{SavingsID: "a", UserID: suite.userID, Currency: "EUR", Amount: decimal.NewFromInt(10)},
			{SavingsID: "b", UserID: suite.userID, Currency: "USD", Amount: decimal.NewFromInt(20)},
			{SavingsID: "c", UserID: suite.userID, Currency: "EUR", Amount: decimal.NewFromInt(30)},
		}, nil).Once()

	rows, err := suite.service.ListSavings(ctx, suite.userID, "EUR", from, to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("a", rows[0].SavingsID)
	suite.Equal("c", rows[1].SavingsID)
}

func (suite *SavingsServiceTestSuite) TestDeleteSavings_Locked() {
	ctx := context.Background()
	savingsID := uuid.NewString()

	suite.savingsRepo.On("FindSavingsByID", ctx, savingsID).
		Return(&domain.Savings{
			SavingsID: savingsID,
			UserID:    suite.userID,
			Currency:  "EUR",
			Amount:    decimal.NewFromInt(10),
			Locked:    true,
		}, nil).Once()

	err := suite.service.DeleteSavings(ctx, suite.userID, savingsID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRecordLocked)
	suite.savingsRepo.AssertNotCalled(suite.T(), "DeleteSavings", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SavingsServiceTestSuite) TestDeleteSavings_TransferMirror() {
	ctx := context.Background()
	savingsID := uuid.NewString()
	transferID := uuid.NewString()

	suite.savingsRepo.On("FindSavingsByID", ctx, savingsID).
		Return(&domain.Savings{
			SavingsID:  savingsID,
			UserID:     suite.userID,
			Currency:   "EUR",
			Amount:     decimal.NewFromInt(50),
			TransferID: &transferID,
		}, nil).Once()

	err := suite.service.DeleteSavings(ctx, suite.userID, savingsID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.savingsRepo.AssertNotCalled(suite.T(), "DeleteSavings", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SavingsServiceTestSuite) TestDeleteSavings_Success() {
	ctx := context.Background()
	savingsID := uuid.NewString()

	suite.savingsRepo.On("FindSavingsByID", ctx, savingsID).
		Return(&domain.Savings{
			SavingsID: savingsID,
			UserID:    suite.userID,
			Currency:  "EUR",
			Amount:    decimal.NewFromInt(10),
		}, nil).Once()
	suite.savingsRepo.On("DeleteSavings", ctx, suite.userID, savingsID).Return(nil).Once()

	err := suite.service.DeleteSavings(ctx, suite.userID, savingsID)

	suite.Require().NoError(err)
	suite.savingsRepo.AssertExpectations(suite.T())
}

func TestSavingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}
