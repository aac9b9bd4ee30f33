package partner

import (
	"context"

	"github.com/tienda/backend/internal/domain/partner"
	"github.com/tienda/backend/internal/domain/shared"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// List returns every stored client
func (s *ClientService) List(ctx context.Context) ([]partner.Client, error) {
	return s.clientRepo.FindAll(ctx)
}

// Create validates the payload and inserts the client.
// Duplicate emails are rejected by the store, not here.
func (s *ClientService) Create(ctx context.Context, payload shared.Payload) (*partner.Client, error) {
	client, err := partner.ValidateClient(payload)
	if err != nil {
		return nil, err
	}
	return s.clientRepo.Create(ctx, client)
}
