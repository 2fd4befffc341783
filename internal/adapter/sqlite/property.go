package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/domain"
)

// PropertyRepository implements domain.PropertyRepository using SQLite.
type PropertyRepository struct {
	q queryer
}

const propertyColumns = "id, title, description, address, price, status, owner_id, created_at, updated_at"

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (domain.Property, error) {
	return r.scanOne(id, r.q.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id,
	))
}

func (r *PropertyRepository) GetByIDAndStatus(ctx context.Context, id string, status domain.PropertyStatus) (domain.Property, error) {
	return r.scanOne(id, r.q.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ? AND status = ?`, id, string(status),
	))
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	return r.query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
}

func (r *PropertyRepository) SearchByTitle(ctx context.Context, title string) ([]domain.Property, error) {
	return r.query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE title LIKE '%' || ? || '%' ORDER BY created_at DESC`,
		title,
	)
}

func (r *PropertyRepository) Save(ctx context.Context, p domain.Property) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO properties (`+propertyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   title = excluded.title, description = excluded.description,
		   address = excluded.address, price = excluded.price,
		   status = excluded.status, owner_id = excluded.owner_id,
		   updated_at = excluded.updated_at`,
		p.ID, p.Title, p.Description, p.Address, p.Price.String(), string(p.Status), p.OwnerID,
		p.CreatedAt.Format(timeFormat),
		p.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("saving property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.NotFoundError{Resource: "property", ID: id}
	}
	return nil
}

func (r *PropertyRepository) query(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) scanOne(id string, row *sql.Row) (domain.Property, error) {
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Property{}, &domain.NotFoundError{Resource: "property", ID: id}
	}
	return p, err
}

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	var price, status, createdAt, updatedAt string

	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Address, &price, &status, &p.OwnerID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Property{}, err
		}
		return domain.Property{}, fmt.Errorf("scanning property: %w", err)
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return domain.Property{}, fmt.Errorf("parsing property price: %w", err)
	}
	p.Price = parsed
	p.Status = domain.PropertyStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
