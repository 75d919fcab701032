package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// EntryTypeSvcFacade defines operations for managing entry classifications
type EntryTypeSvcFacade interface {
	// CreateEntryType persists a new classification for the user.
	CreateEntryType(ctx context.Context, userID string, req dto.CreateEntryTypeRequest) (*domain.EntryType, error)

	// GetEntryTypeByID retrieves a specific classification by its ID.
	GetEntryTypeByID(ctx context.Context, userID string, typeID string) (*domain.EntryType, error)

	// ListEntryTypes retrieves the user's classifications.
	ListEntryTypes(ctx context.Context, userID string, params dto.ListEntryTypesParams) ([]domain.EntryType, error)

	// DeleteEntryType removes a classification.
	DeleteEntryType(ctx context.Context, userID string, typeID string) error
}
