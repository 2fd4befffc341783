package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle state of a rental contract.
type ContractStatus string

const (
	ContractActive     ContractStatus = "ACTIVE"
	ContractTerminated ContractStatus = "TERMINATED"
)

// Contract binds one tenant, one owner and one property for a rental period.
// TERMINATED is terminal; there is no reactivation.
type Contract struct {
	ID           string
	StartDate    time.Time
	EndDate      time.Time
	MonthlyValue decimal.Decimal
	Status       ContractStatus
	TenantID     string
	OwnerID      string
	PropertyID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewContract creates a contract in the initial ACTIVE state.
func NewContract(id string, startDate, endDate time.Time, monthlyValue decimal.Decimal, tenantID, ownerID, propertyID string) Contract {
	now := time.Now().UTC()
	return Contract{
		ID:           id,
		StartDate:    startDate,
		EndDate:      endDate,
		MonthlyValue: monthlyValue,
		Status:       ContractActive,
		TenantID:     tenantID,
		OwnerID:      ownerID,
		PropertyID:   propertyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
