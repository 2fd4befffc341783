package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rentwise/leasehold/internal/domain"
)

// OwnerService provides CRUD and search over owners.
type OwnerService struct {
	store domain.Store
}

// NewOwnerService creates an owner service backed by the given store.
func NewOwnerService(store domain.Store) *OwnerService {
	return &OwnerService{store: store}
}

// OwnerInput carries the mutable owner fields.
type OwnerInput struct {
	Name  string
	Email string
}

// Create persists a new owner with the LOCATOR role.
func (s *OwnerService) Create(ctx context.Context, in OwnerInput) (domain.Owner, error) {
	owner := domain.NewOwner(newID(), in.Name, in.Email)
	if err := s.store.Owners().Save(ctx, owner); err != nil {
		return domain.Owner{}, fmt.Errorf("creating owner: %w", err)
	}
	return owner, nil
}

// Update overwrites the owner's name and email. The role is never reassigned.
func (s *OwnerService) Update(ctx context.Context, id string, in OwnerInput) (domain.Owner, error) {
	owner, err := s.store.Owners().GetByID(ctx, id)
	if err != nil {
		return domain.Owner{}, err
	}

	owner.Name = in.Name
	owner.Email = in.Email
	owner.UpdatedAt = time.Now().UTC()

	if err := s.store.Owners().Save(ctx, owner); err != nil {
		return domain.Owner{}, fmt.Errorf("updating owner: %w", err)
	}
	return owner, nil
}

// Delete removes an owner by id.
func (s *OwnerService) Delete(ctx context.Context, id string) error {
	return s.store.Owners().Delete(ctx, id)
}

// GetByID returns an owner by its unique identifier.
func (s *OwnerService) GetByID(ctx context.Context, id string) (domain.Owner, error) {
	return s.store.Owners().GetByID(ctx, id)
}

// List returns all owners.
func (s *OwnerService) List(ctx context.Context) ([]domain.Owner, error) {
	return s.store.Owners().List(ctx)
}

// SearchByName returns owners whose name contains the given substring,
// case-insensitively.
func (s *OwnerService) SearchByName(ctx context.Context, name string) ([]domain.Owner, error) {
	return s.store.Owners().SearchByName(ctx, name)
}
