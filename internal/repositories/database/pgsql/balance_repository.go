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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for monthly balance snapshots.
func newPgxBalanceRepository(pool *pgxpool.Pool) *PgxBalanceRepository {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBalanceRepository implements portsrepo.BalanceRepositoryFacade
var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceColumns = `balance_id, user_id, currency, month, initial_amount, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanBalance(row pgx.Row) (models.BalanceSnapshot, error) {
	var m models.BalanceSnapshot
	err := row.Scan(
		&m.BalanceID,
		&m.UserID,
		&m.Currency,
		&m.Month,
		&m.InitialAmount,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBalanceSnapshot persists a new snapshot.
func (r *PgxBalanceRepository) SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error {
	m := mapping.ToModelBalanceSnapshot(snapshot)
	query := `
		INSERT INTO balances (` + balanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db().Exec(ctx, query,
		m.BalanceID,
		m.UserID,
		m.Currency,
		m.Month,
		m.InitialAmount,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert balance snapshot "+m.BalanceID, err)
	}
	return nil
}

// FindBalanceByMonth retrieves the snapshot for (user, currency, month).
func (r *PgxBalanceRepository) FindBalanceByMonth(ctx context.Context, userID, currency string, month domain.Month) (*domain.BalanceSnapshot, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE user_id = $1 AND currency = $2 AND month = $3;`
	m, err := scanBalance(r.db().QueryRow(ctx, query, userID, currency, string(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find balance for month "+string(month), err)
	}
	d := mapping.ToDomainBalanceSnapshot(m)
	return &d, nil
}

// FindAnyBalanceForCurrency returns any snapshot for the user/currency.
func (r *PgxBalanceRepository) FindAnyBalanceForCurrency(ctx context.Context, userID, currency string) (*domain.BalanceSnapshot, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE user_id = $1 AND currency = $2 LIMIT 1;`
	m, err := scanBalance(r.db().QueryRow(ctx, query, userID, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find balance for currency "+currency, err)
	}
	d := mapping.ToDomainBalanceSnapshot(m)
	return &d, nil
}

// ListBalancesByMonth retrieves all of a user's snapshots for one month.
func (r *PgxBalanceRepository) ListBalancesByMonth(ctx context.Context, userID string, month domain.Month) ([]domain.BalanceSnapshot, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM balances
		WHERE user_id = $1 AND month = $2
		ORDER BY currency;
	`
	rows, err := r.db().Query(ctx, query, userID, string(month))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balances for month "+string(month), err)
	}
	defer rows.Close()

	balances := []models.BalanceSnapshot{}
	for rows.Next() {
		m, err := scanBalance(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance row for month "+string(month), err)
		}
		balances = append(balances, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance rows for month "+string(month), err)
	}

	return mapping.ToDomainBalanceSnapshotSlice(balances), nil
}

// SumBalancesByCurrency returns per-currency totals of snapshot amounts.
func (r *PgxBalanceRepository) SumBalancesByCurrency(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT currency, COALESCE(SUM(amount), 0)
		FROM balances
		WHERE user_id = $1
		GROUP BY currency;
	`
	rows, err := r.db().Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum balances by currency for user "+userID, err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance sum row for user "+userID, err)
		}
		totals[currency] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance sum rows for user "+userID, err)
	}
	return totals, nil
}

// UpsertClosingBalance sets the month's closing amount, creating the snapshot
// if it does not exist. InitialAmount is preserved on update.
func (r *PgxBalanceRepository) UpsertClosingBalance(ctx context.Context, userID, currency string, month domain.Month, amount decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		INSERT INTO balances (` + balanceColumns + `)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $6, $7)
		ON CONFLICT (user_id, currency, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db().Exec(ctx, query, uuid.NewString(), userID, currency, string(month), amount, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert closing balance for month "+string(month), err)
	}
	return nil
}

// UpsertOpeningBalance seeds a month's snapshot with both the opening and
// current amount, overwriting both if the snapshot exists.
func (r *PgxBalanceRepository) UpsertOpeningBalance(ctx context.Context, userID, currency string, month domain.Month, amount decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		INSERT INTO balances (` + balanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $5, $6, $7, $6, $7)
		ON CONFLICT (user_id, currency, month) DO UPDATE SET
			initial_amount = EXCLUDED.initial_amount,
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db().Exec(ctx, query, uuid.NewString(), userID, currency, string(month), amount, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert opening balance for month "+string(month), err)
	}
	return nil
}
