package partner

import (
	"context"

	"github.com/tienda/backend/internal/domain/shared"
)

// TableClients is the store table holding clients
const TableClients = "clientes"

// Wire field names accepted by the client write endpoint
const (
	FieldClientName    = "nombre"
	FieldClientEmail   = "email"
	FieldClientAddress = "direccion"
	FieldClientPhone   = "telefono"
)

// Client is a stored row of the clientes table
type Client struct {
	ID      int64   `json:"id_cliente"`
	Name    string  `json:"nombre"`
	Email   *string `json:"email"`
	Address *string `json:"direccion"`
	Phone   *string `json:"telefono"`
}

// NewClient is a validated client ready for insertion.
// Email uniqueness is left to the store.
type NewClient struct {
	Name    string
	Email   *string
	Address *string
	Phone   *string
}

// ValidateClient checks a raw client payload. No format validation is
// applied to email.
func ValidateClient(p shared.Payload) (*NewClient, error) {
	name, err := p.RequiredText(FieldClientName)
	if err != nil {
		return nil, err
	}
	email, err := p.OptionalText(FieldClientEmail)
	if err != nil {
		return nil, err
	}
	address, err := p.OptionalText(FieldClientAddress)
	if err != nil {
		return nil, err
	}
	phone, err := p.OptionalText(FieldClientPhone)
	if err != nil {
		return nil, err
	}
	return &NewClient{
		Name:    name,
		Email:   email,
		Address: address,
		Phone:   phone,
	}, nil
}

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	FindAll(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, client *NewClient) (*Client, error)
	// ExistsByID performs a point lookup on the primary key
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
