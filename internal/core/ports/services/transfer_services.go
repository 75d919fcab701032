package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// TransferReaderSvc defines read operations for account transfers
type TransferReaderSvc interface {
	// GetTransferByID retrieves a specific transfer by its ID.
	GetTransferByID(ctx context.Context, userID string, transferID string) (*domain.Transfer, error)

	// ListTransfers retrieves a paginated list of the user's transfers.
	ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) ([]domain.Transfer, error)
}

// TransferWriterSvc defines write operations for account transfers
type TransferWriterSvc interface {
	// CreateTransfer moves money between the balance and savings accounts.
	// The savings mirror record is written in the same transaction.
	CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.Transfer, error)

	// DeleteTransfer removes a transfer and its savings mirror record.
	// Locked transfers cannot be deleted.
	DeleteTransfer(ctx context.Context, userID string, transferID string) error
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
