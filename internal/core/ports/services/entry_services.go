package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// EntryReaderSvc defines read operations for ledger entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves a specific entry by its ID.
	GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error)

	// ListEntries retrieves a paginated list of the user's entries.
	ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.Entry, error)
}

// EntryWriterSvc defines write operations for ledger entries
type EntryWriterSvc interface {
	// CreateEntry persists a new income or expense record.
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error)

	// DeleteEntry removes an entry. Locked entries cannot be deleted.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
