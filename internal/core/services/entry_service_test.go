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

type EntryServiceTestSuite struct {
	suite.Suite
	entryRepo     *MockEntryRepository
	entryTypeRepo *MockEntryTypeRepository
	service       portssvc.EntrySvcFacade
	userID        string
	typeID        string
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockEntryRepository)
	suite.entryTypeRepo = new(MockEntryTypeRepository)
	suite.service = services.NewEntryService(suite.entryRepo, suite.entryTypeRepo)
	suite.userID = uuid.NewString()
	suite.typeID = uuid.NewString()
}

func (suite *EntryServiceTestSuite) groceriesType() *domain.EntryType {
	return &domain.EntryType{
		TypeID:   suite.typeID,
		UserID:   suite.userID,
		Name:     "Groceries",
		Category: domain.Expense,
	}
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	date := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	suite.entryTypeRepo.On("FindEntryTypeByID", ctx, suite.typeID).Return(suite.groceriesType(), nil).Once()

	var captured domain.Entry
	suite.entryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.Entry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Entry)
		}).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.userID, dto.CreateEntryRequest{
		Amount:   decimal.RequireFromString("42.50"),
		Currency: "EUR",
		Date:     date,
		Category: domain.Expense,
		TypeID:   suite.typeID,
		Note:     "weekly shop",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(captured.EntryID)
	suite.Equal(suite.userID, captured.UserID)
	suite.Equal(domain.Expense, captured.Category)
	suite.False(captured.Locked)
	suite.True(captured.Amount.Equal(decimal.RequireFromString("42.50")))
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_NonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := suite.service.CreateEntry(context.Background(), suite.userID, dto.CreateEntryRequest{
			Amount:   amount,
			Currency: "EUR",
			Date:     time.Now(),
			Category: domain.Expense,
			TypeID:   suite.typeID,
		})

		suite.Require().Error(err)
		suite.ErrorIs(err, services.ErrAmountNotPositive)
	}
	suite.entryTypeRepo.AssertNotCalled(suite.T(), "FindEntryTypeByID", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UnknownType() {
	ctx := context.Background()

	suite.entryTypeRepo.On("FindEntryTypeByID", ctx, suite.typeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEntry(ctx, suite.userID, dto.CreateEntryRequest{
		Amount:   decimal.NewFromInt(10),
		Currency: "EUR",
		Date:     time.Now(),
		Category: domain.Expense,
		TypeID:   suite.typeID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_TypeOwnedByAnotherUser() {
	ctx := context.Background()
	foreignType := suite.groceriesType()
	foreignType.UserID = uuid.NewString()

	suite.entryTypeRepo.On("FindEntryTypeByID", ctx, suite.typeID).Return(foreignType, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.userID, dto.CreateEntryRequest{
		Amount:   decimal.NewFromInt(10),
		Currency: "EUR",
		Date:     time.Now(),
		Category: domain.Expense,
		TypeID:   suite.typeID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_CategoryMismatch() {
	ctx := context.Background()

	suite.entryTypeRepo.On("FindEntryTypeByID", ctx, suite.typeID).Return(suite.groceriesType(), nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.userID, dto.CreateEntryRequest{
		Amount:   decimal.NewFromInt(10),
		Currency: "EUR",
		Date:     time.Now(),
		Category: domain.Income,
		TypeID:   suite.typeID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.entryRepo.On("FindEntryByID", ctx, entryID).
		Return(&domain.Entry{
			EntryID:  entryID,
			UserID:   suite.userID,
			Currency: "EUR",
			Amount:   decimal.NewFromInt(10),
			Locked:   false,
		}, nil).Once()
	suite.entryRepo.On("DeleteEntry", ctx, suite.userID, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.userID, entryID)

	suite.Require().NoError(err)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_Locked() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.entryRepo.On("FindEntryByID", ctx, entryID).
		Return(&domain.Entry{
			EntryID:  entryID,
			UserID:   suite.userID,
			Currency: "EUR",
			Amount:   decimal.NewFromInt(10),
			Locked:   true,
		}, nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.userID, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRecordLocked)
	suite.entryRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestGetEntryByID_WrongOwner() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.entryRepo.On("FindEntryByID", ctx, entryID).
		Return(&domain.Entry{
			EntryID: entryID,
			UserID:  uuid.NewString(),
		}, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, suite.userID, entryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
