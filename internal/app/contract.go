package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/domain"
)

// ContractService orchestrates the rental contract lifecycle. Every mutating
// operation runs inside a single store transaction so that partial side
// effects are never visible.
type ContractService struct {
	store     domain.Store
	payments  *PaymentService
	validator domain.TransitionValidator
	publisher domain.EventPublisher
}

// NewContractService creates a contract service with the given collaborators.
func NewContractService(store domain.Store, payments *PaymentService, validator domain.TransitionValidator, publisher domain.EventPublisher) *ContractService {
	return &ContractService{
		store:     store,
		payments:  payments,
		validator: validator,
		publisher: publisher,
	}
}

// ContractInput carries the fields of a contract creation or update request.
type ContractInput struct {
	StartDate    time.Time
	EndDate      time.Time
	MonthlyValue decimal.Decimal
	TenantID     string
	OwnerID      string
	PropertyID   string
}

// Create validates the participants, reserves the property, persists the
// contract and generates its payment schedule, all atomically. Validation
// order: owner role, tenant role, property availability.
func (s *ContractService) Create(ctx context.Context, in ContractInput) (domain.Contract, error) {
	var contract domain.Contract

	err := s.store.InTx(ctx, func(tx domain.Store) error {
		owner, err := tx.Owners().GetByIDAndRole(ctx, in.OwnerID, domain.RoleLocator)
		if err != nil {
			return err
		}
		tenant, err := tx.Tenants().GetByIDAndRole(ctx, in.TenantID, domain.RoleTenant)
		if err != nil {
			return err
		}
		property, err := tx.Properties().GetByIDAndStatus(ctx, in.PropertyID, domain.PropertyAvailable)
		if err != nil {
			return err
		}

		property.Status = domain.PropertyRented
		property.UpdatedAt = time.Now().UTC()
		if err := tx.Properties().Save(ctx, property); err != nil {
			return fmt.Errorf("reserving property: %w", err)
		}

		contract = domain.NewContract(newID(), in.StartDate, in.EndDate, in.MonthlyValue, tenant.ID, owner.ID, property.ID)
		if err := tx.Contracts().Save(ctx, contract); err != nil {
			return fmt.Errorf("creating contract: %w", err)
		}

		return s.payments.GenerateSchedule(ctx, tx, contract)
	})
	if err != nil {
		return domain.Contract{}, err
	}

	if err := s.publisher.Publish(ctx, domain.EventContractCreated, domain.EventRef{
		ContractID: contract.ID,
		PropertyID: contract.PropertyID,
		OwnerID:    contract.OwnerID,
		TenantID:   contract.TenantID,
	}); err != nil {
		return domain.Contract{}, fmt.Errorf("publishing contract.created: %w", err)
	}

	return contract, nil
}

// Update re-resolves the participant references and overwrites the start
// date and monthly value. When the property reference changes, the old
// property reverts to AVAILABLE and the new one (which must be AVAILABLE)
// becomes RENTED. End date and status are not touched.
func (s *ContractService) Update(ctx context.Context, id string, in ContractInput) (domain.Contract, error) {
	var contract domain.Contract

	err := s.store.InTx(ctx, func(tx domain.Store) error {
		var err error
		contract, err = tx.Contracts().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.PropertyID != contract.PropertyID {
			old, err := tx.Properties().GetByID(ctx, contract.PropertyID)
			if err != nil {
				return err
			}
			old.Status = domain.PropertyAvailable
			old.UpdatedAt = time.Now().UTC()
			if err := tx.Properties().Save(ctx, old); err != nil {
				return fmt.Errorf("releasing property: %w", err)
			}

			next, err := tx.Properties().GetByIDAndStatus(ctx, in.PropertyID, domain.PropertyAvailable)
			if err != nil {
				return err
			}
			next.Status = domain.PropertyRented
			next.UpdatedAt = time.Now().UTC()
			if err := tx.Properties().Save(ctx, next); err != nil {
				return fmt.Errorf("reserving property: %w", err)
			}
			contract.PropertyID = next.ID
		}

		owner, err := tx.Owners().GetByIDAndRole(ctx, in.OwnerID, domain.RoleLocator)
		if err != nil {
			return err
		}
		tenant, err := tx.Tenants().GetByIDAndRole(ctx, in.TenantID, domain.RoleTenant)
		if err != nil {
			return err
		}

		contract.OwnerID = owner.ID
		contract.TenantID = tenant.ID
		contract.StartDate = in.StartDate
		contract.MonthlyValue = in.MonthlyValue
		contract.UpdatedAt = time.Now().UTC()

		if err := tx.Contracts().Save(ctx, contract); err != nil {
			return fmt.Errorf("updating contract: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Contract{}, err
	}

	return contract, nil
}

// Terminate closes an active contract. The property stays RENTED; releasing
// it is not part of the termination workflow.
func (s *ContractService) Terminate(ctx context.Context, id string) (domain.Contract, error) {
	var contract domain.Contract

	err := s.store.InTx(ctx, func(tx domain.Store) error {
		var err error
		contract, err = tx.Contracts().GetByID(ctx, id)
		if err != nil {
			return err
		}

		next, err := s.validator.Apply(ctx, string(contract.Status), domain.EventContractTerminated)
		if err != nil {
			return err
		}

		contract.Status = domain.ContractStatus(next)
		contract.UpdatedAt = time.Now().UTC()

		if err := tx.Contracts().Save(ctx, contract); err != nil {
			return fmt.Errorf("terminating contract: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Contract{}, err
	}

	if err := s.publisher.Publish(ctx, domain.EventContractTerminated, domain.EventRef{
		ContractID: contract.ID,
		PropertyID: contract.PropertyID,
		OwnerID:    contract.OwnerID,
		TenantID:   contract.TenantID,
	}); err != nil {
		return domain.Contract{}, fmt.Errorf("publishing contract.terminated: %w", err)
	}

	return contract, nil
}

// GetByID returns a contract by its unique identifier.
func (s *ContractService) GetByID(ctx context.Context, id string) (domain.Contract, error) {
	return s.store.Contracts().GetByID(ctx, id)
}

// GetByTenant returns the contract where the given tenant is the renting party.
func (s *ContractService) GetByTenant(ctx context.Context, tenantID string) (domain.Contract, error) {
	return s.store.Contracts().GetByTenant(ctx, tenantID)
}

// GetByOwner returns the contract where the given owner is the landlord party.
func (s *ContractService) GetByOwner(ctx context.Context, ownerID string) (domain.Contract, error) {
	return s.store.Contracts().GetByOwner(ctx, ownerID)
}

// List returns all contracts.
func (s *ContractService) List(ctx context.Context) ([]domain.Contract, error) {
	return s.store.Contracts().List(ctx)
}
