package repositories

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
)

// EntryTypeRepositoryFacade defines persistence for entry classifications.
type EntryTypeRepositoryFacade interface {
	// SaveEntryType persists a new entry type.
	SaveEntryType(ctx context.Context, entryType domain.EntryType) error

	// FindEntryTypeByID retrieves a type by its identifier.
	FindEntryTypeByID(ctx context.Context, typeID string) (*domain.EntryType, error)

	// ListEntryTypes retrieves a user's types, newest first.
	ListEntryTypes(ctx context.Context, userID string, limit, offset int) ([]domain.EntryType, error)

	// DeleteEntryType removes a type owned by the user.
	DeleteEntryType(ctx context.Context, userID, typeID string) error
}
