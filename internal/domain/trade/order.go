package trade

import (
	"context"

	"github.com/tienda/backend/internal/domain/shared"
)

// TableOrders is the store table holding orders
const TableOrders = "ordenes"

// Wire field names accepted by the order write endpoint
const (
	FieldOrderType     = "tipo_orden"
	FieldOrderClientID = "id_cliente"
)

// EntityClient names the referenced entity in NotFound failures
const EntityClient = "cliente"

// Order is a stored row of the ordenes table
type Order struct {
	ID       int64  `json:"id_orden"`
	Type     string `json:"tipo_orden"`
	ClientID *int64 `json:"id_cliente"`
}

// NewOrder is a validated order ready for insertion
type NewOrder struct {
	Type     string
	ClientID *int64
}

// ClientLookup resolves whether a client row exists
type ClientLookup interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ValidateOrder checks the shape of a raw order payload. It does not
// resolve the client reference; see ResolveClient.
func ValidateOrder(p shared.Payload) (*NewOrder, error) {
	orderType, err := p.RequiredText(FieldOrderType)
	if err != nil {
		return nil, err
	}
	clientID, err := p.OptionalInteger(FieldOrderClientID)
	if err != nil {
		return nil, err
	}
	return &NewOrder{Type: orderType, ClientID: clientID}, nil
}

// ResolveClient checks that a supplied client reference points at an
// existing row. It is a no-op when no reference was supplied.
// The check and the later insert are not atomic; the store's foreign key
// remains authoritative.
func (o *NewOrder) ResolveClient(ctx context.Context, lookup ClientLookup) error {
	if o.ClientID == nil {
		return nil
	}
	exists, err := lookup.ExistsByID(ctx, *o.ClientID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NotFound(EntityClient)
	}
	return nil
}

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindAll(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order *NewOrder) (*Order, error)
}
