package pgsql

import (
	"context"
	"errors"
	"strconv"
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

type PgxSavingsRepository struct {
	BaseRepository
}

// newPgxSavingsRepository creates a new repository for the savings ledger.
func newPgxSavingsRepository(pool *pgxpool.Pool) *PgxSavingsRepository {
	return &PgxSavingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSavingsRepository implements portsrepo.SavingsRepositoryFacade
var _ portsrepo.SavingsRepositoryFacade = (*PgxSavingsRepository)(nil)

const savingsColumns = `savings_id, user_id, currency, amount, date, note, transfer_id, locked, created_at, created_by, last_updated_at, last_updated_by`

func scanSavings(row pgx.Row) (models.Savings, error) {
	var m models.Savings
	err := row.Scan(
		&m.SavingsID,
		&m.UserID,
		&m.Currency,
		&m.Amount,
		&m.Date,
		&m.Note,
		&m.TransferID,
		&m.Locked,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSavings persists a new savings row.
func (r *PgxSavingsRepository) SaveSavings(ctx context.Context, savings domain.Savings) error {
	m := mapping.ToModelSavings(savings)
	query := `
		INSERT INTO savings (` + savingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db().Exec(ctx, query,
		m.SavingsID,
		m.UserID,
		m.Currency,
		m.Amount,
		m.Date,
		m.Note,
		m.TransferID,
		m.Locked,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert savings "+m.SavingsID, err)
	}
	return nil
}

// FindSavingsByID retrieves a single savings row by its identifier.
func (r *PgxSavingsRepository) FindSavingsByID(ctx context.Context, savingsID string) (*domain.Savings, error) {
	query := `SELECT ` + savingsColumns + ` FROM savings WHERE savings_id = $1;`
	m, err := scanSavings(r.db().QueryRow(ctx, query, savingsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find savings by ID "+savingsID, err)
	}
	d := mapping.ToDomainSavings(m)
	return &d, nil
}

// FindAnySavingsForCurrency returns any savings row for the user/currency.
func (r *PgxSavingsRepository) FindAnySavingsForCurrency(ctx context.Context, userID, currency string) (*domain.Savings, error) {
	query := `SELECT ` + savingsColumns + ` FROM savings WHERE user_id = $1 AND currency = $2 LIMIT 1;`
	m, err := scanSavings(r.db().QueryRow(ctx, query, userID, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find savings for currency "+currency, err)
	}
	d := mapping.ToDomainSavings(m)
	return &d, nil
}

// ListSavingsInWindow retrieves a user's savings rows dated within the window.
func (r *PgxSavingsRepository) ListSavingsInWindow(ctx context.Context, userID string, from, to time.Time) ([]domain.Savings, error) {
	query := `
		SELECT ` + savingsColumns + `
		FROM savings
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.db().Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query savings for user "+userID, err)
	}
	defer rows.Close()

	savings := []models.Savings{}
	for rows.Next() {
		m, err := scanSavings(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan savings row for user "+userID, err)
		}
		savings = append(savings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating savings rows for user "+userID, err)
	}

	return mapping.ToDomainSavingsSlice(savings), nil
}

// SumSavingsInWindow returns the total of savings rows matching the filter.
func (r *PgxSavingsRepository) SumSavingsInWindow(ctx context.Context, filter portsrepo.SavingsSumFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM savings
		WHERE user_id = $1 AND currency = $2 AND date BETWEEN $3 AND $4
	`
	args := []interface{}{filter.UserID, filter.Currency, filter.From, filter.To}
	if filter.UnlockedOnly {
		query += ` AND locked = FALSE`
	}
	if filter.ExcludeNote != "" {
		args = append(args, filter.ExcludeNote)
		query += ` AND note != $` + strconv.Itoa(len(args))
	}
	if filter.ExcludeMirrors {
		query += ` AND transfer_id IS NULL`
	}
	query += `;`

	var total decimal.Decimal
	if err := r.db().QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum savings for user "+filter.UserID, err)
	}
	return total, nil
}

// SumSavingsThrough returns the running total of all savings rows for the
// user/currency dated on or before the given date.
func (r *PgxSavingsRepository) SumSavingsThrough(ctx context.Context, userID, currency string, through time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM savings
		WHERE user_id = $1 AND currency = $2 AND date <= $3;
	`
	var total decimal.Decimal
	if err := r.db().QueryRow(ctx, query, userID, currency, through).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum savings through date for user "+userID, err)
	}
	return total, nil
}

// SumSavingsByCurrency returns per-currency running totals for the user.
func (r *PgxSavingsRepository) SumSavingsByCurrency(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT currency, COALESCE(SUM(amount), 0)
		FROM savings
		WHERE user_id = $1
		GROUP BY currency;
	`
	rows, err := r.db().Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum savings by currency for user "+userID, err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan savings sum row for user "+userID, err)
		}
		totals[currency] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating savings sum rows for user "+userID, err)
	}
	return totals, nil
}

// CountSavingsInWindow counts a user's savings rows dated within the window.
func (r *PgxSavingsRepository) CountSavingsInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM savings WHERE user_id = $1 AND date BETWEEN $2 AND $3;`
	var count int64
	if err := r.db().QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count savings for user "+userID, err)
	}
	return count, nil
}

// DeleteSavings removes a savings row owned by the user.
func (r *PgxSavingsRepository) DeleteSavings(ctx context.Context, userID, savingsID string) error {
	query := `DELETE FROM savings WHERE savings_id = $1 AND user_id = $2;`
	cmdTag, err := r.db().Exec(ctx, query, savingsID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete savings "+savingsID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("savings " + savingsID + " not found for delete")
	}
	return nil
}

// LockSavingsInWindow marks every savings row for the user/currency dated in [from, to] as locked.
func (r *PgxSavingsRepository) LockSavingsInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error) {
	query := `
		UPDATE savings
		SET locked = TRUE
		WHERE user_id = $1 AND currency = $2 AND date BETWEEN $3 AND $4;
	`
	cmdTag, err := r.db().Exec(ctx, query, userID, currency, from, to)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock savings for user "+userID, err)
	}
	return cmdTag.RowsAffected(), nil
}
