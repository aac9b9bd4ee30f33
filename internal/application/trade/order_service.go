package trade

import (
	"context"

	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/domain/trade"
	"github.com/tienda/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo trade.OrderRepository
	clients   trade.ClientLookup
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, clients trade.ClientLookup) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		clients:   clients,
	}
}

// List returns every stored order
func (s *OrderService) List(ctx context.Context) ([]trade.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// Create validates the payload, resolves the client reference if one was
// given, then inserts the order.
func (s *OrderService) Create(ctx context.Context, payload shared.Payload) (*trade.Order, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "create",
		attribute.String(telemetry.SpanAttrTable, trade.TableOrders))
	defer span.End()

	order, err := trade.ValidateOrder(payload)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if order.ClientID != nil {
		span.SetAttributes(attribute.Int64(telemetry.SpanAttrClientID, *order.ClientID))
	}
	if err := order.ResolveClient(ctx, s.clients); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64(telemetry.SpanAttrRecordID, created.ID))
	return created, nil
}
