package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rentwise/leasehold/internal/domain"
)

// PaymentService generates payment schedules and processes confirmations.
type PaymentService struct {
	store     domain.Store
	validator domain.TransitionValidator
	publisher domain.EventPublisher
}

// NewPaymentService creates a payment service with the given collaborators.
func NewPaymentService(store domain.Store, validator domain.TransitionValidator, publisher domain.EventPublisher) *PaymentService {
	return &PaymentService{
		store:     store,
		validator: validator,
		publisher: publisher,
	}
}

// GenerateSchedule emits one PENDING payment per calendar month from the
// contract's start date through its end date inclusive, each a snapshot of
// the monthly value. An end date before the start date yields no payments
// and no error. The store argument is the unit of work of the enclosing
// contract creation, so the schedule commits or rolls back with it.
func (s *PaymentService) GenerateSchedule(ctx context.Context, store domain.Store, contract domain.Contract) error {
	var payments []domain.Payment

	due := contract.StartDate
	for !due.After(contract.EndDate) {
		payments = append(payments, domain.NewPayment(newID(), contract.ID, due, contract.MonthlyValue))
		due = nextDueDate(due)
	}

	if len(payments) == 0 {
		return nil
	}
	if err := store.Payments().SaveBatch(ctx, payments); err != nil {
		return fmt.Errorf("saving payment schedule: %w", err)
	}
	return nil
}

// nextDueDate advances a due date by one calendar month, clamping the day
// to the length of the target month (Jan 31 -> Feb 28). The next step
// continues from the clamped day.
func nextDueDate(t time.Time) time.Time {
	y, m, d := t.Date()
	if last := time.Date(y, m+2, 0, 0, 0, 0, 0, t.Location()).Day(); d > last {
		d = last
	}
	return time.Date(y, m+1, d, 0, 0, 0, 0, t.Location())
}

// Confirm marks a payment as PAID on behalf of the contract's owner.
// The supplied owner must exist with the LOCATOR role and must be the owner
// party of the payment's contract; a mismatch reads as not-found rather
// than forbidden. Only PENDING and OVERDUE payments can be confirmed.
func (s *PaymentService) Confirm(ctx context.Context, paymentID, ownerID string) (domain.Payment, error) {
	var payment domain.Payment

	err := s.store.InTx(ctx, func(tx domain.Store) error {
		p, err := tx.Payments().GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if _, err := tx.Owners().GetByIDAndRole(ctx, ownerID, domain.RoleLocator); err != nil {
			return err
		}

		contract, err := tx.Contracts().GetByID(ctx, p.ContractID)
		if err != nil {
			return err
		}
		if contract.OwnerID != ownerID {
			return &domain.NotFoundError{Resource: "contract owner", ID: ownerID}
		}

		next, err := s.validator.Apply(ctx, string(p.Status), domain.EventPaymentConfirmed)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		paidOn := now.Truncate(24 * time.Hour)
		p.Status = domain.PaymentStatus(next)
		p.PaymentDate = &paidOn
		p.UpdatedAt = now

		if err := tx.Payments().Save(ctx, p); err != nil {
			return fmt.Errorf("confirming payment: %w", err)
		}
		payment = p
		return nil
	})
	if err != nil {
		return domain.Payment{}, err
	}

	if err := s.publisher.Publish(ctx, domain.EventPaymentConfirmed, domain.EventRef{
		PaymentID:  payment.ID,
		ContractID: payment.ContractID,
		OwnerID:    ownerID,
	}); err != nil {
		return domain.Payment{}, fmt.Errorf("publishing payment.confirmed: %w", err)
	}

	return payment, nil
}

// GetByID returns a payment by its unique identifier.
func (s *PaymentService) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	return s.store.Payments().GetByID(ctx, id)
}

// ListByContract returns all payments of a contract.
func (s *PaymentService) ListByContract(ctx context.Context, contractID string) ([]domain.Payment, error) {
	return s.store.Payments().ListByContract(ctx, contractID)
}
