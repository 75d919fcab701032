package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/dto"
)

// BalanceReaderSvc defines read operations for balance snapshots and positions
type BalanceReaderSvc interface {
	// GetPositions computes the per-currency position for a month from the
	// full ledger: opening balance, entry sums, transfer sums and savings.
	GetPositions(ctx context.Context, userID string, month domain.Month) ([]domain.Position, error)
}

// BalanceWriterSvc defines write operations for balance snapshots
type BalanceWriterSvc interface {
	// DeclareInitialBalance records the user's starting balance for a currency.
	// It fails with a conflict if any snapshot already exists for the currency.
	DeclareInitialBalance(ctx context.Context, userID string, req dto.DeclareBalanceRequest) (*domain.BalanceSnapshot, error)
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
