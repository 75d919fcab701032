package services_test

import (
	"context"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntryRepository ---

type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, userID string, category domain.EntryCategory, from, to time.Time, limit, offset int) ([]domain.Entry, error) {
	args := m.Called(ctx, userID, category, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) SumEntries(ctx context.Context, filter portsrepo.EntrySumFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEntryRepository) SumEntriesByCurrency(ctx context.Context, userID string, category domain.EntryCategory, from, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID, category, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockEntryRepository) CountEntriesInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) CountEntries(ctx context.Context, userID string, category *domain.EntryCategory) (int64, error) {
	args := m.Called(ctx, userID, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) LockEntriesInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, currency, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransferRepository ---

type MockTransferRepository struct {
	mock.Mock
}

var _ portsrepo.TransferRepositoryFacade = (*MockTransferRepository)(nil)

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, userID string, limit, offset int) ([]domain.Transfer, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) SumTransfers(ctx context.Context, filter portsrepo.TransferSumFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransferRepository) CountTransfersInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransferRepository) SaveTransferWithMirror(ctx context.Context, transfer domain.Transfer, mirror domain.Savings) error {
	args := m.Called(ctx, transfer, mirror)
	return args.Error(0)
}

func (m *MockTransferRepository) DeleteTransferWithMirror(ctx context.Context, userID, transferID string) error {
	args := m.Called(ctx, userID, transferID)
	return args.Error(0)
}

func (m *MockTransferRepository) LockTransfersInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, currency, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SavingsRepository ---

type MockSavingsRepository struct {
	mock.Mock
}

var _ portsrepo.SavingsRepositoryFacade = (*MockSavingsRepository)(nil)

func (m *MockSavingsRepository) FindSavingsByID(ctx context.Context, savingsID string) (*domain.Savings, error) {
	args := m.Called(ctx, savingsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Savings), args.Error(1)
}

func (m *MockSavingsRepository) FindAnySavingsForCurrency(ctx context.Context, userID, currency string) (*domain.Savings, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Savings), args.Error(1)
}

func (m *MockSavingsRepository) ListSavingsInWindow(ctx context.Context, userID string, from, to time.Time) ([]domain.Savings, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Savings), args.Error(1)
}

func (m *MockSavingsRepository) SumSavingsInWindow(ctx context.Context, filter portsrepo.SavingsSumFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSavingsRepository) SumSavingsThrough(ctx context.Context, userID, currency string, through time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, currency, through)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSavingsRepository) SumSavingsByCurrency(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockSavingsRepository) CountSavingsInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavingsRepository) SaveSavings(ctx context.Context, savings domain.Savings) error {
	args := m.Called(ctx, savings)
	return args.Error(0)
}

func (m *MockSavingsRepository) DeleteSavings(ctx context.Context, userID, savingsID string) error {
	args := m.Called(ctx, userID, savingsID)
	return args.Error(0)
}

func (m *MockSavingsRepository) LockSavingsInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, currency, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock BalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceRepositoryFacade = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) FindBalanceByMonth(ctx context.Context, userID, currency string, month domain.Month) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, userID, currency, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockBalanceRepository) FindAnyBalanceForCurrency(ctx context.Context, userID, currency string) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockBalanceRepository) ListBalancesByMonth(ctx context.Context, userID string, month domain.Month) ([]domain.BalanceSnapshot, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSnapshot), args.Error(1)
}

func (m *MockBalanceRepository) SumBalancesByCurrency(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockBalanceRepository) SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockBalanceRepository) UpsertClosingBalance(ctx context.Context, userID, currency string, month domain.Month, amount decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, currency, month, amount, updatedBy, now)
	return args.Error(0)
}

func (m *MockBalanceRepository) UpsertOpeningBalance(ctx context.Context, userID, currency string, month domain.Month, amount decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, currency, month, amount, updatedBy, now)
	return args.Error(0)
}

// --- Mock MonthCloseRepository ---

type MockMonthCloseRepository struct {
	mock.Mock
}

var _ portsrepo.MonthCloseRepositoryFacade = (*MockMonthCloseRepository)(nil)

func (m *MockMonthCloseRepository) FindClosedMonth(ctx context.Context, userID, currency string, month domain.Month) (*domain.ClosedMonth, error) {
	args := m.Called(ctx, userID, currency, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosedMonth), args.Error(1)
}

func (m *MockMonthCloseRepository) HasClosedMonth(ctx context.Context, userID string, month domain.Month) (bool, error) {
	args := m.Called(ctx, userID, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockMonthCloseRepository) ListClosedCurrencies(ctx context.Context, userID string, month domain.Month) ([]string, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMonthCloseRepository) ListAudits(ctx context.Context, userID string, month domain.Month) ([]domain.MonthCloseAudit, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthCloseAudit), args.Error(1)
}

func (m *MockMonthCloseRepository) UpsertClosedMonth(ctx context.Context, closed domain.ClosedMonth) error {
	args := m.Called(ctx, closed)
	return args.Error(0)
}

func (m *MockMonthCloseRepository) SaveMonthCloseAudit(ctx context.Context, audit domain.MonthCloseAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockMonthCloseRepository) AcquireCloseLock(ctx context.Context, userID, currency string, month domain.Month) error {
	args := m.Called(ctx, userID, currency, month)
	return args.Error(0)
}

// --- Mock EntryTypeRepository ---

type MockEntryTypeRepository struct {
	mock.Mock
}

var _ portsrepo.EntryTypeRepositoryFacade = (*MockEntryTypeRepository)(nil)

func (m *MockEntryTypeRepository) SaveEntryType(ctx context.Context, entryType domain.EntryType) error {
	args := m.Called(ctx, entryType)
	return args.Error(0)
}

func (m *MockEntryTypeRepository) FindEntryTypeByID(ctx context.Context, typeID string) (*domain.EntryType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryType), args.Error(1)
}

func (m *MockEntryTypeRepository) ListEntryTypes(ctx context.Context, userID string, limit, offset int) ([]domain.EntryType, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryType), args.Error(1)
}

func (m *MockEntryTypeRepository) DeleteEntryType(ctx context.Context, userID, typeID string) error {
	args := m.Called(ctx, userID, typeID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock LedgerRepository ---

// MockLedgerRepository composes the per-aggregate mocks the same way the
// production ledger repository does. WithTransaction runs the closure
// against the mock itself, so expectations set on the sub-mocks cover the
// in-transaction calls too.
type MockLedgerRepository struct {
	*MockEntryRepository
	*MockTransferRepository
	*MockSavingsRepository
	*MockBalanceRepository
	*MockMonthCloseRepository
}

var _ portsrepo.LedgerCloserWithTx = (*MockLedgerRepository)(nil)

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{
		MockEntryRepository:      new(MockEntryRepository),
		MockTransferRepository:   new(MockTransferRepository),
		MockSavingsRepository:    new(MockSavingsRepository),
		MockBalanceRepository:    new(MockBalanceRepository),
		MockMonthCloseRepository: new(MockMonthCloseRepository),
	}
}

func (m *MockLedgerRepository) WithTransaction(ctx context.Context, fn func(portsrepo.LedgerCloser) error) error {
	return fn(m)
}
