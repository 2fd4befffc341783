package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentwise/leasehold/internal/domain"
)

// TenantRepository implements domain.TenantRepository using SQLite.
type TenantRepository struct {
	q queryer
}

const tenantColumns = "id, name, email, role, created_at, updated_at"

func (r *TenantRepository) GetByID(ctx context.Context, id string) (domain.Tenant, error) {
	return r.scanOne(id, r.q.QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = ?`, id,
	))
}

func (r *TenantRepository) GetByIDAndRole(ctx context.Context, id string, role domain.Role) (domain.Tenant, error) {
	return r.scanOne(id, r.q.QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = ? AND role = ?`, id, string(role),
	))
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	return r.query(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY created_at DESC`)
}

func (r *TenantRepository) SearchByName(ctx context.Context, name string) ([]domain.Tenant, error) {
	return r.query(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE name LIKE '%' || ? || '%' ORDER BY created_at DESC`,
		name,
	)
}

func (r *TenantRepository) Save(ctx context.Context, t domain.Tenant) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO tenants (`+tenantColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name, email = excluded.email, updated_at = excluded.updated_at`,
		t.ID, t.Name, t.Email, string(t.Role),
		t.CreatedAt.Format(timeFormat),
		t.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("saving tenant: %w", err)
	}
	return nil
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.NotFoundError{Resource: "tenant", ID: id}
	}
	return nil
}

func (r *TenantRepository) query(ctx context.Context, query string, args ...any) ([]domain.Tenant, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tenants: %w", err)
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *TenantRepository) scanOne(id string, row *sql.Row) (domain.Tenant, error) {
	t, err := scanTenant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Tenant{}, &domain.NotFoundError{Resource: "tenant", ID: id}
	}
	return t, err
}

func scanTenant(row rowScanner) (domain.Tenant, error) {
	var t domain.Tenant
	var role, createdAt, updatedAt string

	if err := row.Scan(&t.ID, &t.Name, &t.Email, &role, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Tenant{}, err
		}
		return domain.Tenant{}, fmt.Errorf("scanning tenant: %w", err)
	}

	t.Role = domain.Role(role)
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return t, nil
}
