package app_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/app"
	"github.com/rentwise/leasehold/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedParticipants stores one owner, one tenant and one available property.
func seedParticipants(t *testing.T, store *fakeStore) (domain.Owner, domain.Tenant, domain.Property) {
	t.Helper()
	ctx := context.Background()

	owner := domain.NewOwner("o-1", "Alice", "alice@example.com")
	if err := store.Owners().Save(ctx, owner); err != nil {
		t.Fatalf("seeding owner: %v", err)
	}
	tenant := domain.NewTenant("t-1", "Bob", "bob@example.com")
	if err := store.Tenants().Save(ctx, tenant); err != nil {
		t.Fatalf("seeding tenant: %v", err)
	}
	property := domain.NewProperty("p-1", "Loft", "Bright loft", "1 Main St", decimal.NewFromInt(1500), owner.ID)
	if err := store.Properties().Save(ctx, property); err != nil {
		t.Fatalf("seeding property: %v", err)
	}
	return owner, tenant, property
}

func newContractService(store *fakeStore) (*app.ContractService, *mockPublisher) {
	pub := &mockPublisher{}
	payments := app.NewPaymentService(store, tableValidator{}, pub)
	return app.NewContractService(store, payments, tableValidator{}, pub), pub
}

func validInput() app.ContractInput {
	return app.ContractInput{
		StartDate:    date(2025, time.January, 15),
		EndDate:      date(2025, time.March, 15),
		MonthlyValue: decimal.NewFromInt(1200),
		TenantID:     "t-1",
		OwnerID:      "o-1",
		PropertyID:   "p-1",
	}
}

func TestCreate_Success(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	svc, pub := newContractService(store)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contract.Status != domain.ContractActive {
		t.Errorf("Status = %q, want %q", contract.Status, domain.ContractActive)
	}
	if contract.ID == "" {
		t.Error("ID should not be empty")
	}

	property, _ := store.Properties().GetByID(ctx, "p-1")
	if property.Status != domain.PropertyRented {
		t.Errorf("property Status = %q, want %q", property.Status, domain.PropertyRented)
	}

	payments, err := store.Payments().ListByContract(ctx, contract.ID)
	if err != nil {
		t.Fatalf("listing payments: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("got %d payments, want 3", len(payments))
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].DueDate.Before(payments[j].DueDate) })
	wantDue := []time.Time{
		date(2025, time.January, 15),
		date(2025, time.February, 15),
		date(2025, time.March, 15),
	}
	for i, p := range payments {
		if !p.DueDate.Equal(wantDue[i]) {
			t.Errorf("payment %d DueDate = %v, want %v", i, p.DueDate, wantDue[i])
		}
		if p.Status != domain.PaymentPending {
			t.Errorf("payment %d Status = %q, want %q", i, p.Status, domain.PaymentPending)
		}
		if !p.Amount.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("payment %d Amount = %s, want 1200", i, p.Amount)
		}
		if p.PaymentDate != nil {
			t.Errorf("payment %d PaymentDate = %v, want nil", i, p.PaymentDate)
		}
	}

	if len(pub.events) != 1 || pub.events[0].event != domain.EventContractCreated {
		t.Errorf("events = %+v, want one contract.created", pub.events)
	}
}

func TestCreate_ClampsMonthEnd(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	svc, _ := newContractService(store)
	ctx := context.Background()

	in := validInput()
	in.StartDate = date(2025, time.January, 31)
	in.EndDate = date(2025, time.March, 31)

	contract, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payments, _ := store.Payments().ListByContract(ctx, contract.ID)
	sort.Slice(payments, func(i, j int) bool { return payments[i].DueDate.Before(payments[j].DueDate) })

	// The schedule steps from the clamped day: Jan 31 -> Feb 28 -> Mar 28.
	wantDue := []time.Time{
		date(2025, time.January, 31),
		date(2025, time.February, 28),
		date(2025, time.March, 28),
	}
	if len(payments) != len(wantDue) {
		t.Fatalf("got %d payments, want %d", len(payments), len(wantDue))
	}
	for i, p := range payments {
		if !p.DueDate.Equal(wantDue[i]) {
			t.Errorf("payment %d DueDate = %v, want %v", i, p.DueDate, wantDue[i])
		}
	}
}

func TestCreate_EndBeforeStart_NoPayments(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	svc, _ := newContractService(store)
	ctx := context.Background()

	in := validInput()
	in.StartDate = date(2025, time.March, 15)
	in.EndDate = date(2025, time.January, 15)

	contract, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payments, _ := store.Payments().ListByContract(ctx, contract.ID)
	if len(payments) != 0 {
		t.Errorf("got %d payments, want 0", len(payments))
	}
}

func TestCreate_OwnerWrongRole(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	// A tenant id supplied as owner must not pass the role check.
	in := validInput()
	in.OwnerID = "t-1"
	svc, pub := newContractService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, in)

	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	contracts, _ := store.Contracts().List(ctx)
	if len(contracts) != 0 {
		t.Errorf("got %d contracts, want 0", len(contracts))
	}
	property, _ := store.Properties().GetByID(ctx, "p-1")
	if property.Status != domain.PropertyAvailable {
		t.Errorf("property Status = %q, want %q", property.Status, domain.PropertyAvailable)
	}
	if len(pub.events) != 0 {
		t.Errorf("got %d events, want 0", len(pub.events))
	}
}

func TestCreate_PropertyNotAvailable(t *testing.T) {
	store := newFakeStore()
	_, _, property := seedParticipants(t, store)
	ctx := context.Background()

	property.Status = domain.PropertyRented
	if err := store.Properties().Save(ctx, property); err != nil {
		t.Fatalf("seeding rented property: %v", err)
	}

	svc, _ := newContractService(store)
	_, err := svc.Create(ctx, validInput())

	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nfErr.Resource != "property" {
		t.Errorf("Resource = %q, want %q", nfErr.Resource, "property")
	}
}

func TestCreate_RollsBackOnScheduleFailure(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	store.failSaveBatch = errors.New("disk full")
	svc, _ := newContractService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	if err == nil {
		t.Fatal("expected error")
	}

	contracts, _ := store.Contracts().List(ctx)
	if len(contracts) != 0 {
		t.Errorf("got %d contracts, want 0", len(contracts))
	}
	property, _ := store.Properties().GetByID(ctx, "p-1")
	if property.Status != domain.PropertyAvailable {
		t.Errorf("property Status = %q, want %q", property.Status, domain.PropertyAvailable)
	}
}

func TestTerminate_OnceThenRejected(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	svc, pub := newContractService(store)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	closed, err := svc.Terminate(ctx, contract.ID)
	if err != nil {
		t.Fatalf("terminate failed: %v", err)
	}
	if closed.Status != domain.ContractTerminated {
		t.Errorf("Status = %q, want %q", closed.Status, domain.ContractTerminated)
	}

	// Termination does not release the property.
	property, _ := store.Properties().GetByID(ctx, "p-1")
	if property.Status != domain.PropertyRented {
		t.Errorf("property Status = %q, want %q", property.Status, domain.PropertyRented)
	}

	_, err = svc.Terminate(ctx, contract.ID)
	var trErr *domain.TransitionError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}

	if len(pub.events) != 2 || pub.events[1].event != domain.EventContractTerminated {
		t.Errorf("events = %+v, want created then terminated", pub.events)
	}
}

func TestTerminate_NotFound(t *testing.T) {
	store := newFakeStore()
	svc, _ := newContractService(store)

	_, err := svc.Terminate(context.Background(), "nonexistent")
	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdate_SwapsProperty(t *testing.T) {
	store := newFakeStore()
	owner, _, _ := seedParticipants(t, store)
	ctx := context.Background()

	second := domain.NewProperty("p-2", "Studio", "Small studio", "2 Oak Ave", decimal.NewFromInt(900), owner.ID)
	if err := store.Properties().Save(ctx, second); err != nil {
		t.Fatalf("seeding second property: %v", err)
	}

	svc, _ := newContractService(store)
	contract, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validInput()
	in.PropertyID = "p-2"
	in.MonthlyValue = decimal.NewFromInt(950)
	in.StartDate = date(2025, time.February, 1)
	in.EndDate = date(2030, time.December, 31) // must be ignored

	updated, err := svc.Update(ctx, contract.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.PropertyID != "p-2" {
		t.Errorf("PropertyID = %q, want %q", updated.PropertyID, "p-2")
	}
	if !updated.MonthlyValue.Equal(decimal.NewFromInt(950)) {
		t.Errorf("MonthlyValue = %s, want 950", updated.MonthlyValue)
	}
	if !updated.StartDate.Equal(date(2025, time.February, 1)) {
		t.Errorf("StartDate = %v, want 2025-02-01", updated.StartDate)
	}
	if !updated.EndDate.Equal(contract.EndDate) {
		t.Errorf("EndDate = %v, want unchanged %v", updated.EndDate, contract.EndDate)
	}
	if updated.Status != domain.ContractActive {
		t.Errorf("Status = %q, want %q", updated.Status, domain.ContractActive)
	}

	p1, _ := store.Properties().GetByID(ctx, "p-1")
	if p1.Status != domain.PropertyAvailable {
		t.Errorf("old property Status = %q, want %q", p1.Status, domain.PropertyAvailable)
	}
	p2, _ := store.Properties().GetByID(ctx, "p-2")
	if p2.Status != domain.PropertyRented {
		t.Errorf("new property Status = %q, want %q", p2.Status, domain.PropertyRented)
	}
}

func TestUpdate_NewPropertyNotAvailable(t *testing.T) {
	store := newFakeStore()
	owner, _, _ := seedParticipants(t, store)
	ctx := context.Background()

	second := domain.NewProperty("p-2", "Studio", "Small studio", "2 Oak Ave", decimal.NewFromInt(900), owner.ID)
	second.Status = domain.PropertyRented
	if err := store.Properties().Save(ctx, second); err != nil {
		t.Fatalf("seeding second property: %v", err)
	}

	svc, _ := newContractService(store)
	contract, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validInput()
	in.PropertyID = "p-2"
	_, err = svc.Update(ctx, contract.ID, in)

	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	// The failed swap must not release the contract's current property.
	p1, _ := store.Properties().GetByID(ctx, "p-1")
	if p1.Status != domain.PropertyRented {
		t.Errorf("current property Status = %q, want %q", p1.Status, domain.PropertyRented)
	}
}

func TestGetByTenant(t *testing.T) {
	store := newFakeStore()
	seedParticipants(t, store)
	svc, _ := newContractService(store)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetByTenant(ctx, "t-1")
	if err != nil {
		t.Fatalf("GetByTenant failed: %v", err)
	}
	if got.ID != contract.ID {
		t.Errorf("ID = %q, want %q", got.ID, contract.ID)
	}

	_, err = svc.GetByOwner(ctx, "nonexistent")
	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
