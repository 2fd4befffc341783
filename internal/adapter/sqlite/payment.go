package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/domain"
)

// PaymentRepository implements domain.PaymentRepository using SQLite.
type PaymentRepository struct {
	q queryer
}

const paymentColumns = "id, due_date, payment_date, amount, status, contract_id, created_at, updated_at"

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	p, err := scanPayment(r.q.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Payment{}, &domain.NotFoundError{Resource: "payment", ID: id}
	}
	return p, err
}

func (r *PaymentRepository) ListByContract(ctx context.Context, contractID string) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE contract_id = ? ORDER BY due_date`, contractID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Save(ctx context.Context, p domain.Payment) error {
	var paymentDate any
	if p.PaymentDate != nil {
		paymentDate = p.PaymentDate.Format(dateFormat)
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO payments (`+paymentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   payment_date = excluded.payment_date, status = excluded.status,
		   updated_at = excluded.updated_at`,
		p.ID,
		p.DueDate.Format(dateFormat),
		paymentDate,
		p.Amount.String(), string(p.Status), p.ContractID,
		p.CreatedAt.Format(timeFormat),
		p.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("saving payment: %w", err)
	}
	return nil
}

// SaveBatch inserts a generated schedule. It runs inside the contract
// creation transaction, so a failure here rolls back the whole creation.
func (r *PaymentRepository) SaveBatch(ctx context.Context, payments []domain.Payment) error {
	for _, p := range payments {
		if err := r.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func scanPayment(row rowScanner) (domain.Payment, error) {
	var p domain.Payment
	var paymentDate sql.NullString
	var dueDate, amount, status, createdAt, updatedAt string

	err := row.Scan(&p.ID, &dueDate, &paymentDate, &amount, &status, &p.ContractID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, err
		}
		return domain.Payment{}, fmt.Errorf("scanning payment: %w", err)
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("parsing payment amount: %w", err)
	}
	p.Amount = parsed
	p.DueDate = parseDate(dueDate)
	if paymentDate.Valid {
		d := parseDate(paymentDate.String)
		p.PaymentDate = &d
	}
	p.Status = domain.PaymentStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
