package river

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/rentwise/leasehold/internal/domain"
)

// Compile-time check: Publisher implements domain.EventPublisher.
var _ domain.EventPublisher = (*Publisher)(nil)

// EventJobArgs carries the data needed to process a domain event asynchronously.
// River serializes this as JSON into its job queue table. It carries the IDs of
// the entities involved in the event; fields that don't apply to a given event
// are omitted from the JSON.
type EventJobArgs struct {
	Event      string `json:"event"`
	ContractID string `json:"contract_id,omitempty"`
	PaymentID  string `json:"payment_id,omitempty"`
	PropertyID string `json:"property_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
	TenantID   string `json:"tenant_id,omitempty"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (EventJobArgs) Kind() string { return "event.published" }

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Publisher implements domain.EventPublisher by enqueuing River jobs.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher backed by the given River client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Publish enqueues a domain event as an async job in River.
func (p *Publisher) Publish(ctx context.Context, event domain.Event, ref domain.EventRef) error {
	_, err := p.client.Insert(ctx, EventJobArgs{
		Event:      string(event),
		ContractID: ref.ContractID,
		PaymentID:  ref.PaymentID,
		PropertyID: ref.PropertyID,
		OwnerID:    ref.OwnerID,
		TenantID:   ref.TenantID,
	}, nil)
	if err != nil {
		return fmt.Errorf("enqueuing event job: %w", err)
	}
	return nil
}
