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

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrRecordLocked      = errors.New("record is locked by a month close")
)

// entryService provides ledger entry operations.
type entryService struct {
	entryRepo     portsrepo.EntryRepositoryFacade
	entryTypeRepo portsrepo.EntryTypeRepositoryFacade
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, entryTypeRepo portsrepo.EntryTypeRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:     entryRepo,
		entryTypeRepo: entryTypeRepo,
	}
}

// Ensure entryService implements the portssvc.EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry persists a new income or expense record.
func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrAmountNotPositive, req.Amount.String())
	}

	entryType, err := s.entryTypeRepo.FindEntryTypeByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("entry type " + req.TypeID + " not found")
		}
		return nil, fmt.Errorf("failed to resolve entry type: %w", err)
	}
	if entryType.UserID != userID {
		return nil, apperrors.NewNotFoundError("entry type " + req.TypeID + " not found")
	}
	if entryType.Category != req.Category {
		return nil, apperrors.NewAppError(400, "entry type category does not match entry category", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.Entry{
		EntryID:  uuid.NewString(),
		UserID:   userID,
		Currency: req.Currency,
		Amount:   req.Amount,
		Category: req.Category,
		TypeID:   req.TypeID,
		Date:     req.Date,
		Note:     req.Note,
		Locked:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save entry", "error", err)
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Entry created", "entryID", entry.EntryID, "category", entry.Category)
	return &entry, nil
}

// GetEntryByID retrieves a specific entry by its ID.
func (s *entryService) GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// ListEntries retrieves a paginated list of the user's entries.
func (s *entryService) ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.Entry, error) {
	// Default to the current calendar month.
	month := domain.MonthOf(time.Now())
	entries, err := s.entryRepo.ListEntries(ctx, userID, params.Category, month.Start(), month.End(), params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry. Locked entries cannot be deleted.
func (s *entryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.GetEntryByID(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if entry.Locked {
		return fmt.Errorf("%w: entry %s", ErrRecordLocked, entryID)
	}

	if err := s.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		logger.Error("Failed to delete entry", "entryID", entryID, "error", err)
		return err
	}

	logger.Info("Entry deleted", "entryID", entryID)
	return nil
}
