package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/domain"
)

// ContractRepository implements domain.ContractRepository using SQLite.
type ContractRepository struct {
	q queryer
}

const contractColumns = "id, start_date, end_date, monthly_value, status, tenant_id, owner_id, property_id, created_at, updated_at"

func (r *ContractRepository) GetByID(ctx context.Context, id string) (domain.Contract, error) {
	return r.scanOne("contract", id, r.q.QueryRowContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = ?`, id,
	))
}

func (r *ContractRepository) GetByTenant(ctx context.Context, tenantID string) (domain.Contract, error) {
	return r.scanOne("tenant", tenantID, r.q.QueryRowContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE tenant_id = ? LIMIT 1`, tenantID,
	))
}

func (r *ContractRepository) GetByOwner(ctx context.Context, ownerID string) (domain.Contract, error) {
	return r.scanOne("owner", ownerID, r.q.QueryRowContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE owner_id = ? LIMIT 1`, ownerID,
	))
}

func (r *ContractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying contracts: %w", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *ContractRepository) Save(ctx context.Context, c domain.Contract) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO contracts (`+contractColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   start_date = excluded.start_date, end_date = excluded.end_date,
		   monthly_value = excluded.monthly_value, status = excluded.status,
		   tenant_id = excluded.tenant_id, owner_id = excluded.owner_id,
		   property_id = excluded.property_id, updated_at = excluded.updated_at`,
		c.ID,
		c.StartDate.Format(dateFormat),
		c.EndDate.Format(dateFormat),
		c.MonthlyValue.String(), string(c.Status),
		c.TenantID, c.OwnerID, c.PropertyID,
		c.CreatedAt.Format(timeFormat),
		c.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("saving contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) scanOne(resource, id string, row *sql.Row) (domain.Contract, error) {
	c, err := scanContract(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Contract{}, &domain.NotFoundError{Resource: resource, ID: id}
	}
	return c, err
}

func scanContract(row rowScanner) (domain.Contract, error) {
	var c domain.Contract
	var startDate, endDate, monthlyValue, status, createdAt, updatedAt string

	err := row.Scan(&c.ID, &startDate, &endDate, &monthlyValue, &status,
		&c.TenantID, &c.OwnerID, &c.PropertyID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contract{}, err
		}
		return domain.Contract{}, fmt.Errorf("scanning contract: %w", err)
	}

	value, err := decimal.NewFromString(monthlyValue)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("parsing monthly value: %w", err)
	}
	c.MonthlyValue = value
	c.StartDate = parseDate(startDate)
	c.EndDate = parseDate(endDate)
	c.Status = domain.ContractStatus(status)
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}
