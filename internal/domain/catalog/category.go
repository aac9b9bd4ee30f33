package catalog

import (
	"context"

	"github.com/tienda/backend/internal/domain/shared"
)

// TableCategories is the store table holding categories
const TableCategories = "categorias"

// Wire field names accepted by the category write endpoint
const (
	FieldCategoryName        = "nombre"
	FieldCategoryDescription = "descripcion"
)

// Category is a stored row of the categorias table
type Category struct {
	ID          int64   `json:"id_categoria"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

// NewCategory is a validated category ready for insertion
type NewCategory struct {
	Name        string
	Description *string
}

// ValidateCategory checks a raw category payload
func ValidateCategory(p shared.Payload) (*NewCategory, error) {
	name, err := p.RequiredText(FieldCategoryName)
	if err != nil {
		return nil, err
	}
	description, err := p.OptionalText(FieldCategoryDescription)
	if err != nil {
		return nil, err
	}
	return &NewCategory{Name: name, Description: description}, nil
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category *NewCategory) (*Category, error)
}
