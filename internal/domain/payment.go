package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a single payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	// PaymentOverdue is never produced by this service; an external scheduler
	// marks payments overdue. Confirmation accepts it as a source state.
	PaymentOverdue PaymentStatus = "OVERDUE"
	PaymentPaid    PaymentStatus = "PAID"
)

// Payment is one monthly installment of a contract. Amount is a snapshot of
// the contract's monthly value at schedule generation time. PaymentDate is
// nil until the payment is confirmed.
type Payment struct {
	ID          string
	DueDate     time.Time
	PaymentDate *time.Time
	Amount      decimal.Decimal
	Status      PaymentStatus
	ContractID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPayment creates an unpaid payment in the initial PENDING state.
func NewPayment(id, contractID string, dueDate time.Time, amount decimal.Decimal) Payment {
	now := time.Now().UTC()
	return Payment{
		ID:         id,
		DueDate:    dueDate,
		Amount:     amount,
		Status:     PaymentPending,
		ContractID: contractID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
