package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentwise/leasehold/internal/domain"
)

// OwnerRepository implements domain.OwnerRepository using SQLite.
type OwnerRepository struct {
	q queryer
}

const ownerColumns = "id, name, email, role, created_at, updated_at"

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (domain.Owner, error) {
	return r.scanOne(id, r.q.QueryRowContext(ctx,
		`SELECT `+ownerColumns+` FROM owners WHERE id = ?`, id,
	))
}

func (r *OwnerRepository) GetByIDAndRole(ctx context.Context, id string, role domain.Role) (domain.Owner, error) {
	return r.scanOne(id, r.q.QueryRowContext(ctx,
		`SELECT `+ownerColumns+` FROM owners WHERE id = ? AND role = ?`, id, string(role),
	))
}

func (r *OwnerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	return r.query(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY created_at DESC`)
}

// SearchByName matches substrings case-insensitively (SQLite LIKE folds
// ASCII case by default).
func (r *OwnerRepository) SearchByName(ctx context.Context, name string) ([]domain.Owner, error) {
	return r.query(ctx,
		`SELECT `+ownerColumns+` FROM owners WHERE name LIKE '%' || ? || '%' ORDER BY created_at DESC`,
		name,
	)
}

func (r *OwnerRepository) Save(ctx context.Context, o domain.Owner) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO owners (`+ownerColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name, email = excluded.email, updated_at = excluded.updated_at`,
		o.ID, o.Name, o.Email, string(o.Role),
		o.CreatedAt.Format(timeFormat),
		o.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("saving owner: %w", err)
	}
	return nil
}

func (r *OwnerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM owners WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting owner: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.NotFoundError{Resource: "owner", ID: id}
	}
	return nil
}

func (r *OwnerRepository) query(ctx context.Context, query string, args ...any) ([]domain.Owner, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying owners: %w", err)
	}
	defer rows.Close()

	var owners []domain.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (r *OwnerRepository) scanOne(id string, row *sql.Row) (domain.Owner, error) {
	o, err := scanOwner(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Owner{}, &domain.NotFoundError{Resource: "owner", ID: id}
	}
	return o, err
}

func scanOwner(row rowScanner) (domain.Owner, error) {
	var o domain.Owner
	var role, createdAt, updatedAt string

	if err := row.Scan(&o.ID, &o.Name, &o.Email, &role, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Owner{}, err
		}
		return domain.Owner{}, fmt.Errorf("scanning owner: %w", err)
	}

	o.Role = domain.Role(role)
	o.CreatedAt = parseTime(createdAt)
	o.UpdatedAt = parseTime(updatedAt)
	return o, nil
}
