package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rentwise/leasehold/internal/domain"
)

const tracerName = "github.com/rentwise/leasehold/internal/adapter/otel"

// TracingPublisher wraps a domain.EventPublisher with OpenTelemetry tracing.
type TracingPublisher struct {
	next   domain.EventPublisher
	tracer trace.Tracer
}

// Compile-time check: TracingPublisher implements domain.EventPublisher.
var _ domain.EventPublisher = (*TracingPublisher)(nil)

// NewTracingPublisher creates a tracing decorator around the given publisher.
func NewTracingPublisher(next domain.EventPublisher) *TracingPublisher {
	return &TracingPublisher{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (p *TracingPublisher) Publish(ctx context.Context, event domain.Event, ref domain.EventRef) error {
	attrs := []attribute.KeyValue{
		attribute.String("event.type", string(event)),
	}
	if ref.ContractID != "" {
		attrs = append(attrs, attribute.String("contract.id", ref.ContractID))
	}
	if ref.PaymentID != "" {
		attrs = append(attrs, attribute.String("payment.id", ref.PaymentID))
	}
	if ref.PropertyID != "" {
		attrs = append(attrs, attribute.String("property.id", ref.PropertyID))
	}
	if ref.OwnerID != "" {
		attrs = append(attrs, attribute.String("owner.id", ref.OwnerID))
	}
	if ref.TenantID != "" {
		attrs = append(attrs, attribute.String("tenant.id", ref.TenantID))
	}

	ctx, span := p.tracer.Start(ctx, "EventPublisher.Publish",
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	err := p.next.Publish(ctx, event, ref)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
