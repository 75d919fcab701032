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

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for ledger entries.
func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, user_id, currency, amount, category, type_id, date, note, locked, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.Currency,
		&m.Amount,
		&m.Category,
		&m.TypeID,
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

// SaveEntry persists a new entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db().Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.Currency,
		m.Amount,
		m.Category,
		m.TypeID,
		m.Date,
		m.Note,
		m.Locked,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a single entry by its identifier.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	m, err := scanEntry(r.db().QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}
	d := mapping.ToDomainEntry(m)
	return &d, nil
}

// ListEntries retrieves a user's entries of one category within a date window, newest first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, userID string, category domain.EntryCategory, from, to time.Time, limit, offset int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 30
	}
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1 AND category = $2 AND date BETWEEN $3 AND $4
		ORDER BY date DESC, created_at DESC
		LIMIT $5 OFFSET $6;
	`
	rows, err := r.db().Query(ctx, query, userID, category, from, to, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for user "+userID, err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for user "+userID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for user "+userID, err)
	}

	return mapping.ToDomainEntrySlice(entries), nil
}

// SumEntries returns the total amount of entries matching the filter.
func (r *PgxEntryRepository) SumEntries(ctx context.Context, filter portsrepo.EntrySumFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM entries
		WHERE user_id = $1 AND currency = $2 AND category = $3 AND date BETWEEN $4 AND $5
	`
	if filter.UnlockedOnly {
		query += ` AND locked = FALSE`
	}
	query += `;`

	var total decimal.Decimal
	err := r.db().QueryRow(ctx, query,
		filter.UserID,
		filter.Currency,
		filter.Category,
		filter.From,
		filter.To,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum entries for user "+filter.UserID, err)
	}
	return total, nil
}

// SumEntriesByCurrency returns per-currency totals of one category in a window.
func (r *PgxEntryRepository) SumEntriesByCurrency(ctx context.Context, userID string, category domain.EntryCategory, from, to time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT currency, COALESCE(SUM(amount), 0)
		FROM entries
		WHERE user_id = $1 AND category = $2 AND date BETWEEN $3 AND $4
		GROUP BY currency;
	`
	rows, err := r.db().Query(ctx, query, userID, category, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum entries by currency for user "+userID, err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry sum row for user "+userID, err)
		}
		totals[currency] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry sum rows for user "+userID, err)
	}
	return totals, nil
}

// CountEntriesInWindow counts a user's entries dated within the window.
func (r *PgxEntryRepository) CountEntriesInWindow(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM entries WHERE user_id = $1 AND date BETWEEN $2 AND $3;`
	var count int64
	if err := r.db().QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count entries for user "+userID, err)
	}
	return count, nil
}

// CountEntries counts a user's entries, optionally limited to a category.
func (r *PgxEntryRepository) CountEntries(ctx context.Context, userID string, category *domain.EntryCategory) (int64, error) {
	var count int64
	var err error
	if category != nil {
		query := `SELECT COUNT(*) FROM entries WHERE user_id = $1 AND category = $2;`
		err = r.db().QueryRow(ctx, query, userID, *category).Scan(&count)
	} else {
		query := `SELECT COUNT(*) FROM entries WHERE user_id = $1;`
		err = r.db().QueryRow(ctx, query, userID).Scan(&count)
	}
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count entries for user "+userID, err)
	}
	return count, nil
}

// DeleteEntry removes an entry owned by the user.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM entries WHERE entry_id = $1 AND user_id = $2;`
	cmdTag, err := r.db().Exec(ctx, query, entryID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry " + entryID + " not found for delete")
	}
	return nil
}

// LockEntriesInWindow marks every entry for the user/currency dated in [from, to] as locked.
func (r *PgxEntryRepository) LockEntriesInWindow(ctx context.Context, userID, currency string, from, to time.Time) (int64, error) {
	query := `
		UPDATE entries
		SET locked = TRUE
		WHERE user_id = $1 AND currency = $2 AND date BETWEEN $3 AND $4;
	`
	cmdTag, err := r.db().Exec(ctx, query, userID, currency, from, to)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock entries for user "+userID, err)
	}
	return cmdTag.RowsAffected(), nil
}
