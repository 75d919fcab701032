package pgsql

import (
	"context"
	"errors"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	"github.com/fadee/my_expenses_app/internal/models"
	"github.com/fadee/my_expenses_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMonthCloseRepository struct {
	BaseRepository
}

// newPgxMonthCloseRepository creates a new repository for close markers and audits.
func newPgxMonthCloseRepository(pool *pgxpool.Pool) *PgxMonthCloseRepository {
	return &PgxMonthCloseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMonthCloseRepository implements portsrepo.MonthCloseRepositoryFacade
var _ portsrepo.MonthCloseRepositoryFacade = (*PgxMonthCloseRepository)(nil)

// FindClosedMonth retrieves the close marker for (user, currency, month).
func (r *PgxMonthCloseRepository) FindClosedMonth(ctx context.Context, userID, currency string, month domain.Month) (*domain.ClosedMonth, error) {
	query := `
		SELECT closed_month_id, user_id, currency, month, closed_at
		FROM closed_months
		WHERE user_id = $1 AND currency = $2 AND month = $3;
	`
	var m models.ClosedMonth
	err := r.db().QueryRow(ctx, query, userID, currency, string(month)).Scan(
		&m.ClosedMonthID,
		&m.UserID,
		&m.Currency,
		&m.Month,
		&m.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find closed month "+string(month), err)
	}
	d := mapping.ToDomainClosedMonth(m)
	return &d, nil
}

// HasClosedMonth reports whether any currency was closed for the month.
func (r *PgxMonthCloseRepository) HasClosedMonth(ctx context.Context, userID string, month domain.Month) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM closed_months WHERE user_id = $1 AND month = $2);`
	var exists bool
	if err := r.db().QueryRow(ctx, query, userID, string(month)).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check closed month "+string(month), err)
	}
	return exists, nil
}

// ListClosedCurrencies returns the currencies already closed for the month.
func (r *PgxMonthCloseRepository) ListClosedCurrencies(ctx context.Context, userID string, month domain.Month) ([]string, error) {
	query := `
		SELECT currency
		FROM closed_months
		WHERE user_id = $1 AND month = $2
		ORDER BY currency;
	`
	rows, err := r.db().Query(ctx, query, userID, string(month))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query closed currencies for month "+string(month), err)
	}
	defer rows.Close()

	currencies := []string{}
	for rows.Next() {
		var currency string
		if err := rows.Scan(&currency); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan closed currency row for month "+string(month), err)
		}
		currencies = append(currencies, currency)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating closed currency rows for month "+string(month), err)
	}
	return currencies, nil
}

// ListAudits retrieves the audit trail for (user, month), oldest first.
func (r *PgxMonthCloseRepository) ListAudits(ctx context.Context, userID string, month domain.Month) ([]domain.MonthCloseAudit, error) {
	query := `
		SELECT audit_id, user_id, currency, month,
		       calculated_money_on_hand, entered_money_on_hand,
		       calculated_savings, entered_savings,
		       difference_money_on_hand, difference_savings,
		       closed_at, note
		FROM month_close_audits
		WHERE user_id = $1 AND month = $2
		ORDER BY closed_at, currency;
	`
	rows, err := r.db().Query(ctx, query, userID, string(month))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audits for month "+string(month), err)
	}
	defer rows.Close()

	audits := []domain.MonthCloseAudit{}
	for rows.Next() {
		var m models.MonthCloseAudit
		err := rows.Scan(
			&m.AuditID,
			&m.UserID,
			&m.Currency,
			&m.Month,
			&m.CalculatedMoneyOnHand,
			&m.EnteredMoneyOnHand,
			&m.CalculatedSavings,
			&m.EnteredSavings,
			&m.DifferenceMoneyOnHand,
			&m.DifferenceSavings,
			&m.ClosedAt,
			&m.Note,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit row for month "+string(month), err)
		}
		audits = append(audits, mapping.ToDomainMonthCloseAudit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit rows for month "+string(month), err)
	}
	return audits, nil
}

// UpsertClosedMonth creates or refreshes the close marker.
func (r *PgxMonthCloseRepository) UpsertClosedMonth(ctx context.Context, closed domain.ClosedMonth) error {
	m := mapping.ToModelClosedMonth(closed)
	query := `
		INSERT INTO closed_months (closed_month_id, user_id, currency, month, closed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, currency, month) DO UPDATE SET
			closed_at = EXCLUDED.closed_at;
	`
	_, err := r.db().Exec(ctx, query, m.ClosedMonthID, m.UserID, m.Currency, m.Month, m.ClosedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert closed month "+m.Month, err)
	}
	return nil
}

// SaveMonthCloseAudit appends one audit row.
func (r *PgxMonthCloseRepository) SaveMonthCloseAudit(ctx context.Context, audit domain.MonthCloseAudit) error {
	m := mapping.ToModelMonthCloseAudit(audit)
	query := `
		INSERT INTO month_close_audits (
			audit_id, user_id, currency, month,
			calculated_money_on_hand, entered_money_on_hand,
			calculated_savings, entered_savings,
			difference_money_on_hand, difference_savings,
			closed_at, note
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db().Exec(ctx, query,
		m.AuditID,
		m.UserID,
		m.Currency,
		m.Month,
		m.CalculatedMoneyOnHand,
		m.EnteredMoneyOnHand,
		m.CalculatedSavings,
		m.EnteredSavings,
		m.DifferenceMoneyOnHand,
		m.DifferenceSavings,
		m.ClosedAt,
		m.Note,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert month close audit "+m.AuditID, err)
	}
	return nil
}

// AcquireCloseLock serializes closes for (user, currency, month) via an
// advisory lock scoped to the current transaction. It blocks until any
// concurrent close of the same key finishes.
func (r *PgxMonthCloseRepository) AcquireCloseLock(ctx context.Context, userID, currency string, month domain.Month) error {
	query := `SELECT pg_advisory_xact_lock(hashtext($1));`
	key := userID + ":" + currency + ":" + string(month)
	if _, err := r.db().Exec(ctx, query, key); err != nil {
		return apperrors.NewAppError(500, "failed to acquire close lock for "+key, err)
	}
	return nil
}
