package catalog

import (
	"context"

	"github.com/tienda/backend/internal/domain/catalog"
	"github.com/tienda/backend/internal/domain/shared"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns every stored product
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Create validates the payload and inserts the product.
// Nothing is written when validation fails.
func (s *ProductService) Create(ctx context.Context, payload shared.Payload) (*catalog.Product, error) {
	product, err := catalog.ValidateProduct(payload)
	if err != nil {
		return nil, err
	}
	return s.productRepo.Create(ctx, product)
}
