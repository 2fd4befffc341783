package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyStatus represents the rental availability of a property.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "AVAILABLE"
	PropertyRented    PropertyStatus = "RENTED"
)

// Property is a rentable unit owned by exactly one owner. Its status is
// RENTED while an active contract references it.
type Property struct {
	ID          string
	Title       string
	Description string
	Address     string
	Price       decimal.Decimal
	Status      PropertyStatus
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProperty creates a property in the initial AVAILABLE state.
func NewProperty(id, title, description, address string, price decimal.Decimal, ownerID string) Property {
	now := time.Now().UTC()
	return Property{
		ID:          id,
		Title:       title,
		Description: description,
		Address:     address,
		Price:       price,
		Status:      PropertyAvailable,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
