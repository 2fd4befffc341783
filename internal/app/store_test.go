package app_test

import (
	"context"
	"maps"
	"strings"

	"github.com/rentwise/leasehold/internal/domain"
)

// fakeStore is an in-memory domain.Store. InTx snapshots all tables and
// restores them when fn fails, mirroring the all-or-nothing behavior of the
// SQLite adapter.
type fakeStore struct {
	owners     map[string]domain.Owner
	tenants    map[string]domain.Tenant
	properties map[string]domain.Property
	contracts  map[string]domain.Contract
	payments   map[string]domain.Payment

	failSaveBatch error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		owners:     make(map[string]domain.Owner),
		tenants:    make(map[string]domain.Tenant),
		properties: make(map[string]domain.Property),
		contracts:  make(map[string]domain.Contract),
		payments:   make(map[string]domain.Payment),
	}
}

func (s *fakeStore) Owners() domain.OwnerRepository        { return fakeOwners{s} }
func (s *fakeStore) Tenants() domain.TenantRepository      { return fakeTenants{s} }
func (s *fakeStore) Properties() domain.PropertyRepository { return fakeProperties{s} }
func (s *fakeStore) Contracts() domain.ContractRepository  { return fakeContracts{s} }
func (s *fakeStore) Payments() domain.PaymentRepository    { return fakePayments{s} }

func (s *fakeStore) InTx(_ context.Context, fn func(domain.Store) error) error {
	owners := maps.Clone(s.owners)
	tenants := maps.Clone(s.tenants)
	properties := maps.Clone(s.properties)
	contracts := maps.Clone(s.contracts)
	payments := maps.Clone(s.payments)

	if err := fn(s); err != nil {
		s.owners = owners
		s.tenants = tenants
		s.properties = properties
		s.contracts = contracts
		s.payments = payments
		return err
	}
	return nil
}

type fakeOwners struct{ s *fakeStore }

func (r fakeOwners) GetByID(_ context.Context, id string) (domain.Owner, error) {
	o, ok := r.s.owners[id]
	if !ok {
		return domain.Owner{}, &domain.NotFoundError{Resource: "owner", ID: id}
	}
	return o, nil
}

func (r fakeOwners) GetByIDAndRole(ctx context.Context, id string, role domain.Role) (domain.Owner, error) {
	o, ok := r.s.owners[id]
	if !ok || o.Role != role {
		return domain.Owner{}, &domain.NotFoundError{Resource: "owner", ID: id}
	}
	return o, nil
}

func (r fakeOwners) List(_ context.Context) ([]domain.Owner, error) {
	out := make([]domain.Owner, 0, len(r.s.owners))
	for _, o := range r.s.owners {
		out = append(out, o)
	}
	return out, nil
}

func (r fakeOwners) SearchByName(_ context.Context, name string) ([]domain.Owner, error) {
	var out []domain.Owner
	for _, o := range r.s.owners {
		if strings.Contains(strings.ToLower(o.Name), strings.ToLower(name)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r fakeOwners) Save(_ context.Context, o domain.Owner) error {
	r.s.owners[o.ID] = o
	return nil
}

func (r fakeOwners) Delete(_ context.Context, id string) error {
	if _, ok := r.s.owners[id]; !ok {
		return &domain.NotFoundError{Resource: "owner", ID: id}
	}
	delete(r.s.owners, id)
	return nil
}

type fakeTenants struct{ s *fakeStore }

func (r fakeTenants) GetByID(_ context.Context, id string) (domain.Tenant, error) {
	t, ok := r.s.tenants[id]
	if !ok {
		return domain.Tenant{}, &domain.NotFoundError{Resource: "tenant", ID: id}
	}
	return t, nil
}

func (r fakeTenants) GetByIDAndRole(_ context.Context, id string, role domain.Role) (domain.Tenant, error) {
	t, ok := r.s.tenants[id]
	if !ok || t.Role != role {
		return domain.Tenant{}, &domain.NotFoundError{Resource: "tenant", ID: id}
	}
	return t, nil
}

func (r fakeTenants) List(_ context.Context) ([]domain.Tenant, error) {
	out := make([]domain.Tenant, 0, len(r.s.tenants))
	for _, t := range r.s.tenants {
		out = append(out, t)
	}
	return out, nil
}

func (r fakeTenants) SearchByName(_ context.Context, name string) ([]domain.Tenant, error) {
	var out []domain.Tenant
	for _, t := range r.s.tenants {
		if strings.Contains(strings.ToLower(t.Name), strings.ToLower(name)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTenants) Save(_ context.Context, t domain.Tenant) error {
	r.s.tenants[t.ID] = t
	return nil
}

func (r fakeTenants) Delete(_ context.Context, id string) error {
	if _, ok := r.s.tenants[id]; !ok {
		return &domain.NotFoundError{Resource: "tenant", ID: id}
	}
	delete(r.s.tenants, id)
	return nil
}

type fakeProperties struct{ s *fakeStore }

func (r fakeProperties) GetByID(_ context.Context, id string) (domain.Property, error) {
	p, ok := r.s.properties[id]
	if !ok {
		return domain.Property{}, &domain.NotFoundError{Resource: "property", ID: id}
	}
	return p, nil
}

func (r fakeProperties) GetByIDAndStatus(_ context.Context, id string, status domain.PropertyStatus) (domain.Property, error) {
	p, ok := r.s.properties[id]
	if !ok || p.Status != status {
		return domain.Property{}, &domain.NotFoundError{Resource: "property", ID: id}
	}
	return p, nil
}

func (r fakeProperties) List(_ context.Context) ([]domain.Property, error) {
	out := make([]domain.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, p)
	}
	return out, nil
}

func (r fakeProperties) SearchByTitle(_ context.Context, title string) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range r.s.properties {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(title)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r fakeProperties) Save(_ context.Context, p domain.Property) error {
	r.s.properties[p.ID] = p
	return nil
}

func (r fakeProperties) Delete(_ context.Context, id string) error {
	if _, ok := r.s.properties[id]; !ok {
		return &domain.NotFoundError{Resource: "property", ID: id}
	}
	delete(r.s.properties, id)
	return nil
}

type fakeContracts struct{ s *fakeStore }

func (r fakeContracts) GetByID(_ context.Context, id string) (domain.Contract, error) {
	c, ok := r.s.contracts[id]
	if !ok {
		return domain.Contract{}, &domain.NotFoundError{Resource: "contract", ID: id}
	}
	return c, nil
}

func (r fakeContracts) GetByTenant(_ context.Context, tenantID string) (domain.Contract, error) {
	for _, c := range r.s.contracts {
		if c.TenantID == tenantID {
			return c, nil
		}
	}
	return domain.Contract{}, &domain.NotFoundError{Resource: "tenant", ID: tenantID}
}

func (r fakeContracts) GetByOwner(_ context.Context, ownerID string) (domain.Contract, error) {
	for _, c := range r.s.contracts {
		if c.OwnerID == ownerID {
			return c, nil
		}
	}
	return domain.Contract{}, &domain.NotFoundError{Resource: "owner", ID: ownerID}
}

func (r fakeContracts) List(_ context.Context) ([]domain.Contract, error) {
	out := make([]domain.Contract, 0, len(r.s.contracts))
	for _, c := range r.s.contracts {
		out = append(out, c)
	}
	return out, nil
}

func (r fakeContracts) Save(_ context.Context, c domain.Contract) error {
	r.s.contracts[c.ID] = c
	return nil
}

type fakePayments struct{ s *fakeStore }

func (r fakePayments) GetByID(_ context.Context, id string) (domain.Payment, error) {
	p, ok := r.s.payments[id]
	if !ok {
		return domain.Payment{}, &domain.NotFoundError{Resource: "payment", ID: id}
	}
	return p, nil
}

func (r fakePayments) ListByContract(_ context.Context, contractID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.s.payments {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r fakePayments) Save(_ context.Context, p domain.Payment) error {
	r.s.payments[p.ID] = p
	return nil
}

func (r fakePayments) SaveBatch(_ context.Context, payments []domain.Payment) error {
	if r.s.failSaveBatch != nil {
		return r.s.failSaveBatch
	}
	for _, p := range payments {
		r.s.payments[p.ID] = p
	}
	return nil
}

// tableValidator applies the domain transition table directly, keeping app
// tests independent of the FSM adapter.
type tableValidator struct{}

func (tableValidator) Apply(_ context.Context, current string, event domain.Event) (string, error) {
	for _, t := range domain.Transitions {
		if t.Event == event && t.Src == current {
			return t.Dst, nil
		}
	}
	return "", &domain.TransitionError{Event: event, Current: current}
}

type publishedEvent struct {
	event domain.Event
	ref   domain.EventRef
}

type mockPublisher struct {
	events []publishedEvent
}

func (m *mockPublisher) Publish(_ context.Context, e domain.Event, ref domain.EventRef) error {
	m.events = append(m.events, publishedEvent{event: e, ref: ref})
	return nil
}
