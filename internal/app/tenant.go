package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rentwise/leasehold/internal/domain"
)

// TenantService provides CRUD and search over tenants.
type TenantService struct {
	store domain.Store
}

// NewTenantService creates a tenant service backed by the given store.
func NewTenantService(store domain.Store) *TenantService {
	return &TenantService{store: store}
}

// TenantInput carries the mutable tenant fields.
type TenantInput struct {
	Name  string
	Email string
}

// Create persists a new tenant with the TENANT role.
func (s *TenantService) Create(ctx context.Context, in TenantInput) (domain.Tenant, error) {
	tenant := domain.NewTenant(newID(), in.Name, in.Email)
	if err := s.store.Tenants().Save(ctx, tenant); err != nil {
		return domain.Tenant{}, fmt.Errorf("creating tenant: %w", err)
	}
	return tenant, nil
}

// Update overwrites the tenant's name and email. The role is never reassigned.
func (s *TenantService) Update(ctx context.Context, id string, in TenantInput) (domain.Tenant, error) {
	tenant, err := s.store.Tenants().GetByID(ctx, id)
	if err != nil {
		return domain.Tenant{}, err
	}

	tenant.Name = in.Name
	tenant.Email = in.Email
	tenant.UpdatedAt = time.Now().UTC()

	if err := s.store.Tenants().Save(ctx, tenant); err != nil {
		return domain.Tenant{}, fmt.Errorf("updating tenant: %w", err)
	}
	return tenant, nil
}

// Delete removes a tenant by id.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	return s.store.Tenants().Delete(ctx, id)
}

// GetByID returns a tenant by its unique identifier.
func (s *TenantService) GetByID(ctx context.Context, id string) (domain.Tenant, error) {
	return s.store.Tenants().GetByID(ctx, id)
}

// List returns all tenants.
func (s *TenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.store.Tenants().List(ctx)
}

// SearchByName returns tenants whose name contains the given substring,
// case-insensitively.
func (s *TenantService) SearchByName(ctx context.Context, name string) ([]domain.Tenant, error) {
	return s.store.Tenants().SearchByName(ctx, name)
}
