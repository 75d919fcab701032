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

type PgxEntryTypeRepository struct {
	BaseRepository
}

// newPgxEntryTypeRepository creates a new repository for entry classifications.
func newPgxEntryTypeRepository(pool *pgxpool.Pool) portsrepo.EntryTypeRepositoryFacade {
	return &PgxEntryTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntryTypeRepository implements portsrepo.EntryTypeRepositoryFacade
var _ portsrepo.EntryTypeRepositoryFacade = (*PgxEntryTypeRepository)(nil)

const entryTypeColumns = `type_id, user_id, name, category, created_at, created_by, last_updated_at, last_updated_by`

// SaveEntryType persists a new entry type.
func (r *PgxEntryTypeRepository) SaveEntryType(ctx context.Context, entryType domain.EntryType) error {
	m := mapping.ToModelEntryType(entryType)
	query := `
		INSERT INTO types (` + entryTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db().Exec(ctx, query,
		m.TypeID,
		m.UserID,
		m.Name,
		m.Category,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry type "+m.TypeID, err)
	}
	return nil
}

// FindEntryTypeByID retrieves a type by its identifier.
func (r *PgxEntryTypeRepository) FindEntryTypeByID(ctx context.Context, typeID string) (*domain.EntryType, error) {
	query := `SELECT ` + entryTypeColumns + ` FROM types WHERE type_id = $1;`
	var m models.EntryType
	err := r.db().QueryRow(ctx, query, typeID).Scan(
		&m.TypeID,
		&m.UserID,
		&m.Name,
		&m.Category,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry type by ID "+typeID, err)
	}
	d := mapping.ToDomainEntryType(m)
	return &d, nil
}

// ListEntryTypes retrieves a user's types, newest first.
func (r *PgxEntryTypeRepository) ListEntryTypes(ctx context.Context, userID string, limit, offset int) ([]domain.EntryType, error) {
	if limit <= 0 {
		limit = 30
	}
	query := `
		SELECT ` + entryTypeColumns + `
		FROM types
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db().Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry types for user "+userID, err)
	}
	defer rows.Close()

	types := []models.EntryType{}
	for rows.Next() {
		var m models.EntryType
		err := rows.Scan(
			&m.TypeID,
			&m.UserID,
			&m.Name,
			&m.Category,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry type row for user "+userID, err)
		}
		types = append(types, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry type rows for user "+userID, err)
	}

	return mapping.ToDomainEntryTypeSlice(types), nil
}

// DeleteEntryType removes a type owned by the user.
func (r *PgxEntryTypeRepository) DeleteEntryType(ctx context.Context, userID, typeID string) error {
	query := `DELETE FROM types WHERE type_id = $1 AND user_id = $2;`
	cmdTag, err := r.db().Exec(ctx, query, typeID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry type "+typeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry type " + typeID + " not found for delete")
	}
	return nil
}
