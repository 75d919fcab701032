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

// ErrSameAccount is returned when a transfer names the same source and
// destination account.
var ErrSameAccount = errors.New("source and destination accounts must differ")

// transferService provides Balance<->Savings transfer operations.
type transferService struct {
	transferRepo portsrepo.TransferRepositoryFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade) portssvc.TransferSvcFacade {
	return &transferService{transferRepo: transferRepo}
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer moves money between the balance and savings accounts. The
// savings ledger stays authoritative: a mirror row with the signed amount is
// written in the same database transaction as the transfer itself.
func (s *transferService) CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrAmountNotPositive, req.Amount.String())
	}

	fromAccount, err := domain.NormalizeAccountName(req.FromAccount)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}
	toAccount, err := domain.NormalizeAccountName(req.ToAccount)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}
	if fromAccount == toAccount {
		return nil, ErrSameAccount
	}

	now := time.Now()
	transfer := domain.Transfer{
		TransferID:  uuid.NewString(),
		UserID:      userID,
		Currency:    req.Currency,
		Amount:      req.Amount,
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Date:        req.Date,
		Note:        req.Note,
		Locked:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	mirrorNote := "Transfer to savings"
	if fromAccount == domain.AccountSavings {
		mirrorNote = "Transfer from savings"
	}
	mirror := domain.Savings{
		SavingsID:   uuid.NewString(),
		UserID:      userID,
		Currency:    req.Currency,
		Amount:      transfer.MirrorAmount(),
		Date:        truncateToDate(req.Date),
		Note:        mirrorNote,
		TransferID:  &transfer.TransferID,
		Locked:      false,
		AuditFields: transfer.AuditFields,
	}

	if err := s.transferRepo.SaveTransferWithMirror(ctx, transfer, mirror); err != nil {
		logger.Error("Failed to save transfer with mirror", "error", err)
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	logger.Info("Transfer created", "transferID", transfer.TransferID, "from", fromAccount, "to", toAccount)
	return &transfer, nil
}

// GetTransferByID retrieves a specific transfer by its ID.
func (s *transferService) GetTransferByID(ctx context.Context, userID string, transferID string) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return transfer, nil
}

// ListTransfers retrieves a paginated list of the user's transfers.
func (s *transferService) ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) ([]domain.Transfer, error) {
	transfers, err := s.transferRepo.ListTransfers(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

// DeleteTransfer removes a transfer and its savings mirror record. Locked
// transfers cannot be deleted.
func (s *transferService) DeleteTransfer(ctx context.Context, userID string, transferID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	transfer, err := s.GetTransferByID(ctx, userID, transferID)
	if err != nil {
		return err
	}
	if transfer.Locked {
		return fmt.Errorf("%w: transfer %s", ErrRecordLocked, transferID)
	}

	if err := s.transferRepo.DeleteTransferWithMirror(ctx, userID, transferID); err != nil {
		logger.Error("Failed to delete transfer", "transferID", transferID, "error", err)
		return err
	}

	logger.Info("Transfer deleted with mirror", "transferID", transferID)
	return nil
}

// truncateToDate drops the time component, keeping the calendar date in UTC.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
