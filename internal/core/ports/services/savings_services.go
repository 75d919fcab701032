package services

import (
	"context"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// SavingsReaderSvc defines read operations for savings records
type SavingsReaderSvc interface {
	// GetSavingsByID retrieves a specific savings record by its ID.
	GetSavingsByID(ctx context.Context, userID string, savingsID string) (*domain.Savings, error)

	// ListSavings retrieves the user's savings records within a date window.
	ListSavings(ctx context.Context, userID string, currency string, from, to time.Time) ([]domain.Savings, error)
}

// SavingsWriterSvc defines write operations for savings records
type SavingsWriterSvc interface {
	// CreateSavings persists a manual savings record.
	CreateSavings(ctx context.Context, userID string, req dto.CreateSavingsRequest) (*domain.Savings, error)

	// DeclareInitialSavings records the user's starting savings for a currency.
	// It fails with a conflict if any savings record already exists for the currency.
	DeclareInitialSavings(ctx context.Context, userID string, req dto.CreateSavingsRequest) (*domain.Savings, error)

	// DeleteSavings removes a savings record. Locked records cannot be deleted.
	DeleteSavings(ctx context.Context, userID string, savingsID string) error
}

// SavingsSvcFacade combines all savings-related service interfaces
type SavingsSvcFacade interface {
	SavingsReaderSvc
	SavingsWriterSvc
}
