package catalog

import (
	"context"

	"github.com/tienda/backend/internal/domain/catalog"
	"github.com/tienda/backend/internal/domain/shared"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns every stored category
func (s *CategoryService) List(ctx context.Context) ([]catalog.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

// Create validates the payload and inserts the category
func (s *CategoryService) Create(ctx context.Context, payload shared.Payload) (*catalog.Category, error) {
	category, err := catalog.ValidateCategory(payload)
	if err != nil {
		return nil, err
	}
	return s.categoryRepo.Create(ctx, category)
}
