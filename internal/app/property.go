package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/domain"
)

// PropertyService provides CRUD and search over properties. Create and
// Update re-validate the owner reference against the LOCATOR role.
type PropertyService struct {
	store domain.Store
}

// NewPropertyService creates a property service backed by the given store.
func NewPropertyService(store domain.Store) *PropertyService {
	return &PropertyService{store: store}
}

// PropertyInput carries the mutable property fields.
type PropertyInput struct {
	Title       string
	Description string
	Address     string
	Price       decimal.Decimal
	OwnerID     string
}

// Create persists a new property in the AVAILABLE state, owned by the
// referenced LOCATOR.
func (s *PropertyService) Create(ctx context.Context, in PropertyInput) (domain.Property, error) {
	owner, err := s.store.Owners().GetByIDAndRole(ctx, in.OwnerID, domain.RoleLocator)
	if err != nil {
		return domain.Property{}, err
	}

	property := domain.NewProperty(newID(), in.Title, in.Description, in.Address, in.Price, owner.ID)
	if err := s.store.Properties().Save(ctx, property); err != nil {
		return domain.Property{}, fmt.Errorf("creating property: %w", err)
	}
	return property, nil
}

// Update overwrites the property's descriptive fields and owner reference.
// The status is not touched; it belongs to the contract workflow.
func (s *PropertyService) Update(ctx context.Context, id string, in PropertyInput) (domain.Property, error) {
	owner, err := s.store.Owners().GetByIDAndRole(ctx, in.OwnerID, domain.RoleLocator)
	if err != nil {
		return domain.Property{}, err
	}

	property, err := s.store.Properties().GetByID(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}

	property.Title = in.Title
	property.Description = in.Description
	property.Address = in.Address
	property.Price = in.Price
	property.OwnerID = owner.ID
	property.UpdatedAt = time.Now().UTC()

	if err := s.store.Properties().Save(ctx, property); err != nil {
		return domain.Property{}, fmt.Errorf("updating property: %w", err)
	}
	return property, nil
}

// Delete removes a property by id.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	return s.store.Properties().Delete(ctx, id)
}

// GetByID returns a property by its unique identifier.
func (s *PropertyService) GetByID(ctx context.Context, id string) (domain.Property, error) {
	return s.store.Properties().GetByID(ctx, id)
}

// List returns all properties.
func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	return s.store.Properties().List(ctx)
}

// SearchByTitle returns properties whose title contains the given substring,
// case-insensitively.
func (s *PropertyService) SearchByTitle(ctx context.Context, title string) ([]domain.Property, error) {
	return s.store.Properties().SearchByTitle(ctx, title)
}
