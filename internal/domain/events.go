package domain

// Event identifies a workflow occurrence. Events that appear in the
// transition table drive state changes; all events are also published to the
// async pipeline after the change is persisted.
type Event string

const (
	EventContractCreated    Event = "contract.created"
	EventContractTerminated Event = "contract.terminated"
	EventPaymentConfirmed   Event = "payment.confirmed"
)

// Transition defines a valid state change: an event moves an entity from Src
// to Dst. Statuses are carried as plain strings so contract and payment
// machines share one table; the value sets do not overlap.
type Transition struct {
	Event Event
	Src   string
	Dst   string
}

// Transitions defines all valid state changes. Contract creation is not a
// transition (contracts start ACTIVE), and nothing here produces OVERDUE.
// This is domain knowledge consumed by the FSM adapter.
var Transitions = []Transition{
	{Event: EventContractTerminated, Src: string(ContractActive), Dst: string(ContractTerminated)},
	{Event: EventPaymentConfirmed, Src: string(PaymentPending), Dst: string(PaymentPaid)},
	{Event: EventPaymentConfirmed, Src: string(PaymentOverdue), Dst: string(PaymentPaid)},
}

// EventRef identifies the entities involved in a published event. Unset
// fields are omitted from the serialized payload.
type EventRef struct {
	ContractID string
	PaymentID  string
	PropertyID string
	OwnerID    string
	TenantID   string
}
