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

// savingsService provides savings ledger operations.
type savingsService struct {
	savingsRepo portsrepo.SavingsRepositoryFacade
}

// NewSavingsService creates a new SavingsService.
func NewSavingsService(savingsRepo portsrepo.SavingsRepositoryFacade) portssvc.SavingsSvcFacade {
	return &savingsService{savingsRepo: savingsRepo}
}

// Ensure savingsService implements the portssvc.SavingsSvcFacade interface
var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

func (s *savingsService) newSavings(userID string, req dto.CreateSavingsRequest) domain.Savings {
	now := time.Now()
	return domain.Savings{
		SavingsID: uuid.NewString(),
		UserID:    userID,
		Currency:  req.Currency,
		Amount:    req.Amount,
		Date:      truncateToDate(req.Date),
		Note:      req.Note,
		Locked:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// CreateSavings persists a manual savings record.
func (s *savingsService) CreateSavings(ctx context.Context, userID string, req dto.CreateSavingsRequest) (*domain.Savings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	savings := s.newSavings(userID, req)
	if err := s.savingsRepo.SaveSavings(ctx, savings); err != nil {
		logger.Error("Failed to save savings record", "error", err)
		return nil, fmt.Errorf("failed to save savings: %w", err)
	}

	logger.Info("Savings record created", "savingsID", savings.SavingsID)
	return &savings, nil
}

// DeclareInitialSavings records the user's starting savings for a currency.
// It fails with a conflict if any savings record already exists for the
// currency, so the declaration happens at most once.
func (s *savingsService) DeclareInitialSavings(ctx context.Context, userID string, req dto.CreateSavingsRequest) (*domain.Savings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.savingsRepo.FindAnySavingsForCurrency(ctx, userID, req.Currency)
	if err == nil {
		return nil, fmt.Errorf("%w: savings already declared for currency %s", apperrors.ErrConflict, req.Currency)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing savings: %w", err)
	}

	savings := s.newSavings(userID, req)
	if err := s.savingsRepo.SaveSavings(ctx, savings); err != nil {
		logger.Error("Failed to save initial savings", "error", err)
		return nil, fmt.Errorf("failed to save savings: %w", err)
	}

	logger.Info("Initial savings declared", "savingsID", savings.SavingsID, "currency", savings.Currency)
	return &savings, nil
}

// GetSavingsByID retrieves a specific savings record by its ID.
func (s *savingsService) GetSavingsByID(ctx context.Context, userID string, savingsID string) (*domain.Savings, error) {
	savings, err := s.savingsRepo.FindSavingsByID(ctx, savingsID)
	if err != nil {
		return nil, err
	}
	if savings.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return savings, nil
}

// ListSavings retrieves the user's savings records within a date window.
func (s *savingsService) ListSavings(ctx context.Context, userID string, currency string, from, to time.Time) ([]domain.Savings, error) {
	rows, err := s.savingsRepo.ListSavingsInWindow(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings: %w", err)
	}
	if currency == "" {
		return rows, nil
	}
	filtered := rows[:0]
	for _, row := range rows {
		if row.Currency == currency {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// DeleteSavings removes a savings record. Locked records and transfer
// mirrors cannot be deleted directly.
func (s *savingsService) DeleteSavings(ctx context.Context, userID string, savingsID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	savings, err := s.GetSavingsByID(ctx, userID, savingsID)
	if err != nil {
		return err
	}
	if savings.Locked {
		return fmt.Errorf("%w: savings %s", ErrRecordLocked, savingsID)
	}
	if savings.TransferID != nil {
		return apperrors.NewAppError(409, "savings row mirrors a transfer, delete the transfer instead", apperrors.ErrConflict)
	}

	if err := s.savingsRepo.DeleteSavings(ctx, userID, savingsID); err != nil {
		logger.Error("Failed to delete savings record", "savingsID", savingsID, "error", err)
		return err
	}

	logger.Info("Savings record deleted", "savingsID", savingsID)
	return nil
}
