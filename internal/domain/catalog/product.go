package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tienda/backend/internal/domain/shared"
)

// TableProducts is the store table holding products
const TableProducts = "productos"

// Wire field names accepted by the product write endpoint
const (
	FieldProductName        = "nombre"
	FieldProductDescription = "descripcion"
	FieldProductPrice       = "precio"
	FieldProductStock       = "stock"
	FieldProductCategoryID  = "id_categoria"
)

// Product is a stored row of the productos table
type Product struct {
	ID          int64           `json:"id_producto"`
	Name        string          `json:"nombre"`
	Description *string         `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int64           `json:"stock"`
	CategoryID  *int64          `json:"id_categoria"`
}

// NewProduct is a validated, normalized product ready for insertion
type NewProduct struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int64
	CategoryID  *int64
}

// ValidateProduct checks a raw product payload and returns the normalized
// record. Text fields are trimmed and omitted optionals default to nil.
func ValidateProduct(p shared.Payload) (*NewProduct, error) {
	name, err := p.RequiredText(FieldProductName)
	if err != nil {
		return nil, err
	}
	description, err := p.OptionalText(FieldProductDescription)
	if err != nil {
		return nil, err
	}
	price, err := p.RequiredDecimal(FieldProductPrice)
	if err != nil {
		return nil, err
	}
	stock, err := p.RequiredInteger(FieldProductStock)
	if err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.InvalidValue(FieldProductStock, shared.ConstraintNonNegative)
	}
	categoryID, err := p.OptionalInteger(FieldProductCategoryID)
	if err != nil {
		return nil, err
	}

	return &NewProduct{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}, nil
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	// FindAll returns every product ordered by id
	FindAll(ctx context.Context) ([]Product, error)
	// Create inserts the product and returns the stored row
	Create(ctx context.Context, product *NewProduct) (*Product, error)
}
