package services

import (
	"context"
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

// entryTypeService provides entry classification operations.
type entryTypeService struct {
	entryTypeRepo portsrepo.EntryTypeRepositoryFacade
}

// NewEntryTypeService creates a new EntryTypeService.
func NewEntryTypeService(entryTypeRepo portsrepo.EntryTypeRepositoryFacade) portssvc.EntryTypeSvcFacade {
	return &entryTypeService{entryTypeRepo: entryTypeRepo}
}

// Ensure entryTypeService implements the portssvc.EntryTypeSvcFacade interface
var _ portssvc.EntryTypeSvcFacade = (*entryTypeService)(nil)

// CreateEntryType persists a new classification for the user.
func (s *entryTypeService) CreateEntryType(ctx context.Context, userID string, req dto.CreateEntryTypeRequest) (*domain.EntryType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	entryType := domain.EntryType{
		TypeID:   uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.entryTypeRepo.SaveEntryType(ctx, entryType); err != nil {
		logger.Error("Failed to save entry type", "error", err)
		return nil, fmt.Errorf("failed to save entry type: %w", err)
	}

	logger.Info("Entry type created", "typeID", entryType.TypeID, "name", entryType.Name)
	return &entryType, nil
}

// GetEntryTypeByID retrieves a specific classification by its ID.
func (s *entryTypeService) GetEntryTypeByID(ctx context.Context, userID string, typeID string) (*domain.EntryType, error) {
	entryType, err := s.entryTypeRepo.FindEntryTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if entryType.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return entryType, nil
}

// ListEntryTypes retrieves the user's classifications.
func (s *entryTypeService) ListEntryTypes(ctx context.Context, userID string, params dto.ListEntryTypesParams) ([]domain.EntryType, error) {
	types, err := s.entryTypeRepo.ListEntryTypes(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry types: %w", err)
	}
	return types, nil
}

// DeleteEntryType removes a classification.
func (s *entryTypeService) DeleteEntryType(ctx context.Context, userID string, typeID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetEntryTypeByID(ctx, userID, typeID); err != nil {
		return err
	}
	if err := s.entryTypeRepo.DeleteEntryType(ctx, userID, typeID); err != nil {
		logger.Error("Failed to delete entry type", "typeID", typeID, "error", err)
		return err
	}

	logger.Info("Entry type deleted", "typeID", typeID)
	return nil
}
