package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	"github.com/fadee/my_expenses_app/internal/models"
	"github.com/fadee/my_expenses_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for account transfers.
func newPgxTransferRepository(pool *pgxpool.Pool) *PgxTransferRepository {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, user_id, currency, amount, from_account, to_account, date, note, locked, created_at, created_by, last_updated_at, last_updated_by`

func scanTransfer(row pgx.Row) (models.Transfer, error) {
	var m models.Transfer
	err := row.Scan(
		&m.TransferID,
		&m.UserID,
		&m.Currency,
		&m.Amount,
		&m.FromAccount,
		&m.ToAccount,
		&m.Date,
		&m.Note,
		&m.Locked,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransferWithMirror persists a transfer and its mirrored savings row
// within a DB transaction. A transfer is never visible without its mirror.
func (r *PgxTransferRepository) SaveTransferWithMirror(ctx context.Context, transfer domain.Transfer, mirror domain.Savings) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTransfer := mapping.ToModelTransfer(transfer)
	transferQuery := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, transferQuery,
		modelTransfer.TransferID,
		modelTransfer.UserID,
		modelTransfer.Currency,
		modelTransfer.Amount,
		modelTransfer.FromAccount,
		modelTransfer.ToAccount,
		modelTransfer.Date,
		modelTransfer.Note,
		modelTransfer.Locked,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transfer "+modelTransfer.TransferID, err)
	}

	modelMirror := mapping.ToModelSavings(mirror)
	mirrorQuery := `
		INSERT INTO savings (savings_id, user_id, currency, amount, date, note, transfer_id, locked, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, mirrorQuery,
		modelMirror.SavingsID,
		modelMirror.UserID,
		modelMirror.Currency,
		modelMirror.Amount,
		modelMirror.Date,
		modelMirror.Note,
		modelMirror.TransferID,
		modelMirror.Locked,
		modelMirror.CreatedAt,
		modelMirror.CreatedBy,
		modelMirror.LastUpdatedAt,
		modelMirror.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert savings mirror for transfer "+modelTransfer.TransferID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransferWithMirror removes a transfer and its mirrored savings row
// within a DB transaction.
func (r *PgxTransferRepository) DeleteTransferWithMirror(ctx context.Context, userID, transferID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	mirrorQuery := `DELETE FROM savings WHERE transfer_id = $1 AND user_id = $2;`
	if _, err := tx.Exec(ctx, mirrorQuery, transferID, userID); err != nil {
		return apperrors.NewAppError(500, "failed to delete savings mirror for transfer "+transferID, err)
	}

	transferQuery := `DELETE FROM transfers WHERE transfer_id = $1 AND user_id = $2;`
	cmdTag, err := tx.Exec(ctx, transferQuery, transferID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transfer "+transferID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transfer " + transferID + " not found for delete")
	}

	return r.Commit(ctx, tx)
}

// FindTransferByID retrieves a single transfer by its identifier.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE transfer_id = $1;`
	m, err := scanTransfer(r.db().QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transfer by ID "+transferID, err)
	}
	d := mapping.ToDomainTransfer(m)
	return &d, nil
}

// ListTransfers retrieves a user's transfers, newest first.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, userID string, limit, offset int) ([]domain.Transfer, error) {
	if limit <= 0 {
		limit = 30
	}
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db().Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transfers for user "+userID, err)
	}
	defer rows.Close()

	transfers := []models.Transfer{}
	for rows.Next() {
		m, err := scanTransfer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transfer row for user "+userID, err)
		}
		transfers = append(transfers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transfer rows for user "+userID, err)
	}

	return mapping.ToDomainTransferSlice(transfers), nil
}

// SumTransfers returns the total amount of transfers matching the filter.
func (r *PgxTransferRepository) SumTransfers(ctx context.Context, filter portsrepo.TransferSumFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transfers
		WHERE user_id = $1 AND currency = $2 AND from_account = $3 AND to_account = $4 AND date BETWEEN $5 AND $6
	`
	if filter.UnlockedOnly {
		query += ` AND locked = FALSE`
	}
	query += `;`

	var total decimal.Decimal
	err := r.db().QueryRow(ctx, query,
		filter.UserID,
		filter.Currency,
		filter.FromAccount,
		filter.ToAccount,
		filter.From,
		filter.To,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum transfers for user "+filter.UserID, err)
	}
	return total, nil
}

// CountTransfersInWindow counts a user's transfers dated within the window.
func (r *PgxTransferRepository) CountTransfersInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM transfers WHERE user_id = $1 AND date BETWEEN $2 AND $3;`
	var count int64
	if err := r.db().QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transfers for user "+userID, err)
	}
	return count, nil
}

// LockTransfersInWindow marks every transfer for the user/currency dated in [from, to] as locked.
func (r *PgxTransferRepository) LockTransfersInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error) {
	query := `
		UPDATE transfers
		SET locked = TRUE
		WHERE user_id = $1 AND currency = $2 AND date BETWEEN $3 AND $4;
	`
	cmdTag, err := r.db().Exec(ctx, query, userID, currency, from, to)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock transfers for user "+userID, err)
	}
	return cmdTag.RowsAffected(), nil
}
