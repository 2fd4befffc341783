package domain

import "context"

// OwnerRepository defines the persistence contract for owners.
type OwnerRepository interface {
	GetByID(ctx context.Context, id string) (Owner, error)
	GetByIDAndRole(ctx context.Context, id string, role Role) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	SearchByName(ctx context.Context, name string) ([]Owner, error)
	Save(ctx context.Context, owner Owner) error
	Delete(ctx context.Context, id string) error
}

// TenantRepository defines the persistence contract for tenants.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (Tenant, error)
	GetByIDAndRole(ctx context.Context, id string, role Role) (Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	SearchByName(ctx context.Context, name string) ([]Tenant, error)
	Save(ctx context.Context, tenant Tenant) error
	Delete(ctx context.Context, id string) error
}

// PropertyRepository defines the persistence contract for properties.
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (Property, error)
	GetByIDAndStatus(ctx context.Context, id string, status PropertyStatus) (Property, error)
	List(ctx context.Context) ([]Property, error)
	SearchByTitle(ctx context.Context, title string) ([]Property, error)
	Save(ctx context.Context, property Property) error
	Delete(ctx context.Context, id string) error
}

// ContractRepository defines the persistence contract for contracts.
type ContractRepository interface {
	GetByID(ctx context.Context, id string) (Contract, error)
	GetByTenant(ctx context.Context, tenantID string) (Contract, error)
	GetByOwner(ctx context.Context, ownerID string) (Contract, error)
	List(ctx context.Context) ([]Contract, error)
	Save(ctx context.Context, contract Contract) error
}

// PaymentRepository defines the persistence contract for payments.
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (Payment, error)
	ListByContract(ctx context.Context, contractID string) ([]Payment, error)
	Save(ctx context.Context, payment Payment) error
	SaveBatch(ctx context.Context, payments []Payment) error
}

// Store groups the entity repositories behind one persistence boundary.
// InTx runs fn against a Store whose repositories share a single
// transaction; the transaction commits only if fn returns nil. Calling InTx
// on a Store that is already transactional reuses the open transaction.
type Store interface {
	Owners() OwnerRepository
	Tenants() TenantRepository
	Properties() PropertyRepository
	Contracts() ContractRepository
	Payments() PaymentRepository
	InTx(ctx context.Context, fn func(Store) error) error
}

// TransitionValidator checks a requested state change against the transition
// table and returns the destination status.
type TransitionValidator interface {
	Apply(ctx context.Context, current string, event Event) (string, error)
}

// EventPublisher defines the contract for emitting domain events.
type EventPublisher interface {
	Publish(ctx context.Context, event Event, ref EventRef) error
}
